package decl

import "f2mex/fortran"

// File is the root of a declaration file.
type File struct {
	Version string `yaml:"version"`
	// Module is the name of the generated Fortran module.
	Module string `yaml:"module"`
	// Kind is the default real kind for routines that don't set one.
	Kind     string    `yaml:"kind,omitempty"`
	Routines []Routine `yaml:"routines"`
}

// Routine describes one Fortran subroutine.
type Routine struct {
	Name string `yaml:"name"`
	// Kind overrides File.Kind for this routine and its args.
	Kind string `yaml:"kind,omitempty"`
	// Prefixed prepends the precision code of Kind to the Fortran name.
	Prefixed bool `yaml:"prefixed,omitempty"`
	// Bind is the C binding label, empty for no bind(c).
	Bind string `yaml:"bind,omitempty"`
	Args []Arg  `yaml:"args"`
}

// Arg describes one dummy argument.
type Arg struct {
	Name   string  `yaml:"name"`
	Type   ArgType `yaml:"type,omitempty"`
	Kind   string  `yaml:"kind,omitempty"`
	Rank   int     `yaml:"rank,omitempty"`
	Intent Intent  `yaml:"intent,omitempty"`
}

type ArgType string

const (
	TypeReal    ArgType = "real"
	TypeInteger ArgType = "integer"
)

func (t ArgType) IsValid() bool {
	return t == TypeReal || t == TypeInteger
}

type Intent string

const (
	IntentIn    Intent = "in"
	IntentOut   Intent = "out"
	IntentInOut Intent = "inout"
)

func (i Intent) IsValid() bool {
	switch i {
	default:
		return false
	case IntentIn, IntentOut, IntentInOut:
		return true
	}
}

// Keyword returns the spelling used in an intent() attribute.
func (i Intent) Keyword() string {
	if i == IntentInOut {
		return "in out"
	}

	return string(i)
}

// RealKind resolves Kind, the zero RealKind if it is unknown.
func (r *Routine) RealKind() fortran.RealKind {
	k, _ := fortran.ParseRealKind(r.Kind)
	return k
}

// RealKind resolves Kind, the zero RealKind for integer or unknown kinds.
func (a Arg) RealKind() fortran.RealKind {
	k, _ := fortran.ParseRealKind(a.Kind)
	return k
}

// FortranName returns the routine name as emitted, with the precision
// code prepended for prefixed routines.
func (r *Routine) FortranName() string {
	if !r.Prefixed {
		return r.Name
	}

	return fortran.TypeCode(r.Kind) + r.Name
}
