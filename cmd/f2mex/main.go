// Package main provides the CLI entrypoint for f2mex.
//
// f2mex generates Fortran interface modules for MEX gateway routines:
//   - Reads a YAML declaration file describing routines and dummy arguments
//   - Validates kinds, intents and ranks
//   - Emits a Fortran module with one interface block per routine
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"f2mex/internal/logging"
)

// CLI defines the command-line interface using Kong
type CLI struct {
	Verbose  bool   `name:"verbose" short:"v" help:"Verbose output (same as --log-level=debug)"`
	LogLevel string `name:"log-level" default:"info" env:"F2MEX_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (${enum})"`

	Gen      GenCmd      `cmd:"" help:"Generate Fortran interfaces from a declaration file"`
	Check    CheckCmd    `cmd:"" help:"Validate a declaration file"`
	Fmt      FmtCmd      `cmd:"" help:"Rewrite a declaration file with all defaults filled in"`
	Typecode TypecodeCmd `cmd:"" help:"Print the precision code of real kind names"`
	Rank     RankCmd     `cmd:"" help:"Print the dimension attribute for array ranks"`
}

// Context is passed to every command's Run method.
type Context struct {
	Log *zap.Logger
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("f2mex"),
		kong.Description("Fortran interface generator for MEX gateways"),
		kong.UsageOnError(),
	)

	level := cli.LogLevel
	if cli.Verbose {
		level = "debug"
	}

	log, err := logging.New(level)
	if err != nil {
		kctx.FatalIfErrorf(err)
	}
	defer func() { _ = log.Sync() }()

	err = kctx.Run(&Context{Log: log})
	if err != nil {
		log.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
