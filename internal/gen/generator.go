package gen

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"f2mex/internal/decl"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables a summary comment above each interface.
	GenerateComments bool
	// Extension of the generated source file.
	Extension string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputDir:        "./generated",
		GenerateComments: true,
		Extension:        ".f90",
	}
}

// Generator generates Fortran source from a declaration file.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report diagnostics during generation.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, opts ...Option) *Generator {
	g := &Generator{config: config, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GeneratedFile represents a generated Fortran source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "f2mex_interfaces.f90").
	Filename string
	// Content is the rendered source.
	Content []byte
}

type templateData struct {
	Module   string
	Comments bool
	Routines []decl.Routine
}

// Generate validates f and renders it into a single module file.
// Warnings are logged, errors abort generation.
func (g *Generator) Generate(f *decl.File) ([]GeneratedFile, error) {
	diags := decl.Validate(f)
	for _, w := range diags.Warnings {
		g.log.Warn("declaration warning",
			zap.String("code", w.Code),
			zap.String("routine", w.Routine),
			zap.String("arg", w.Arg),
			zap.String("message", w.Message))
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("invalid declarations: %w", err)
	}

	data := &templateData{
		Module:   f.Module,
		Comments: g.config.GenerateComments,
		Routines: f.Routines,
	}

	var buf bytes.Buffer
	if err := moduleTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering module %s: %w", f.Module, err)
	}

	for i := range f.Routines {
		g.log.Debug("generated interface",
			zap.String("module", f.Module),
			zap.String("routine", f.Routines[i].FortranName()),
			zap.Int("args", len(f.Routines[i].Args)))
	}

	return []GeneratedFile{{
		Filename: f.Module + g.extension(),
		Content:  buf.Bytes(),
	}}, nil
}

func (g *Generator) extension() string {
	if g.config.Extension == "" {
		return ".f90"
	}

	return g.config.Extension
}
