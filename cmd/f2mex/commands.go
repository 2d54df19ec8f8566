package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"f2mex/fortran"
	"f2mex/internal/decl"
	"f2mex/internal/diagnostic"
	"f2mex/internal/gen"
)

var errInvalidDeclarations = errors.New("declaration file has errors")

// GenCmd generates Fortran interface modules.
type GenCmd struct {
	File       string `arg:"" type:"existingfile" help:"Declaration file (YAML)"`
	Out        string `name:"out" short:"o" default:"./generated" env:"F2MEX_OUT" help:"Output directory"`
	Stdout     bool   `name:"stdout" help:"Print generated source instead of writing files"`
	NoComments bool   `name:"no-comments" help:"Omit summary comments above interfaces"`
	Extension  string `name:"ext" default:".f90" help:"Extension of generated files"`

	stdout io.Writer
}

func (c *GenCmd) Run(ctx *Context) error {
	f, err := decl.LoadFile(c.File)
	if err != nil {
		return err
	}

	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = c.Out
	cfg.GenerateComments = !c.NoComments
	cfg.Extension = c.Extension

	files, err := gen.NewGenerator(cfg, gen.WithLogger(ctx.Log)).Generate(f)
	if err != nil {
		return err
	}

	if c.Stdout {
		w := writerOr(c.stdout, os.Stdout)
		for _, file := range files {
			if _, err := w.Write(file.Content); err != nil {
				return fmt.Errorf("writing %s: %w", file.Filename, err)
			}
		}

		return nil
	}

	paths, err := gen.WriteFiles(files, cfg.OutputDir)
	if err != nil {
		return err
	}

	for _, p := range paths {
		ctx.Log.Info("wrote file", zap.String("path", p), zap.Int("routines", len(f.Routines)))
	}

	return nil
}

// CheckCmd validates a declaration file and prints its diagnostics.
type CheckCmd struct {
	File string `arg:"" type:"existingfile" help:"Declaration file (YAML)"`

	stdout io.Writer
}

func (c *CheckCmd) Run(ctx *Context) error {
	f, err := decl.LoadFile(c.File)
	if err != nil {
		return err
	}

	diags := decl.Validate(f)
	printDiagnostics(writerOr(c.stdout, os.Stdout), diags)

	ctx.Log.Debug("checked declarations",
		zap.String("file", c.File),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)))

	if diags.HasErrors() {
		return errInvalidDeclarations
	}

	return nil
}

// FmtCmd normalizes a declaration file: defaults are made explicit.
type FmtCmd struct {
	File   string `arg:"" type:"existingfile" help:"Declaration file (YAML)"`
	Out    string `name:"out" short:"o" type:"path" help:"Write to this path instead of rewriting the input"`
	Stdout bool   `name:"stdout" help:"Print the normalized file instead of writing it"`

	stdout io.Writer
}

func (c *FmtCmd) Run(ctx *Context) error {
	f, err := decl.LoadFile(c.File)
	if err != nil {
		return err
	}

	if c.Stdout {
		data, err := decl.Marshal(f)
		if err != nil {
			return fmt.Errorf("marshaling %s: %w", c.File, err)
		}

		_, err = writerOr(c.stdout, os.Stdout).Write(data)

		return err
	}

	path := c.File
	if c.Out != "" {
		path = c.Out
	}

	if err := decl.WriteFile(f, path); err != nil {
		return err
	}

	ctx.Log.Info("wrote file", zap.String("path", path), zap.Int("routines", len(f.Routines)))

	return nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// TypecodeCmd prints the precision code for each kind name.
type TypecodeCmd struct {
	Names []string `arg:"" help:"Real kind names, e.g. REAL64"`

	stdout io.Writer
}

func (c *TypecodeCmd) Run() error {
	w := writerOr(c.stdout, os.Stdout)
	for _, name := range c.Names {
		_, _ = fmt.Fprintf(w, "%s\t%q\n", name, fortran.TypeCode(name))
	}

	return nil
}

// RankCmd prints the dimension attribute for each rank.
type RankCmd struct {
	Ranks []int `arg:"" help:"Array ranks (>= 0)"`

	stdout io.Writer
}

func (c *RankCmd) Run() error {
	w := writerOr(c.stdout, os.Stdout)
	for _, rank := range c.Ranks {
		s, err := fortran.RankSuffix(rank)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(w, "%d\t%q\n", rank, s)
	}

	return nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}

	return fallback
}
