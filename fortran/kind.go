package fortran

//go:generate go tool stringer -type=RealKind -output=kind_string.go

// RealKind is an iso_fortran_env real kind parameter.
type RealKind int

const (
	_ RealKind = iota // skip zero value, use it as a default (invalid) value for RealKind

	RealKindREAL32
	RealKindREAL64

	// RealKindTotal is a constant that represents the total number of kinds defined
	RealKindTotal = int(iota)
)

const (
	nameREAL32 = "REAL32"
	nameREAL64 = "REAL64"
)

// TypeCode returns the BLAS-style precision prefix for a real kind name:
// "d" for REAL64, "s" for REAL32 and "" for anything else.
// Matching is exact and case-sensitive.
func TypeCode(v string) string {
	switch v {
	case nameREAL64:
		return "d"
	case nameREAL32:
		return "s"
	default:
		return ""
	}
}

// ParseRealKind resolves a kind name as written in a Fortran source.
func ParseRealKind(v string) (RealKind, bool) {
	switch v {
	default:
		return 0, false
	case nameREAL32:
		return RealKindREAL32, true
	case nameREAL64:
		return RealKindREAL64, true
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k RealKind) IsValid() bool {
	return k > 0 && int(k) < RealKindTotal
}

// Name returns the iso_fortran_env parameter name, or "" for an invalid kind.
func (k RealKind) Name() string {
	switch k {
	default:
		return ""
	case RealKindREAL32:
		return nameREAL32
	case RealKindREAL64:
		return nameREAL64
	}
}

// Code returns the precision prefix of k, see TypeCode.
func (k RealKind) Code() string {
	return TypeCode(k.Name())
}

// Bytes returns the storage size of one element of kind k.
// It panics for an invalid kind.
func (k RealKind) Bytes() int {
	switch k {
	default:
		panic("only valid real kinds have a storage size, but requested for: " + k.String())
	case RealKindREAL32:
		return 4
	case RealKindREAL64:
		return 8
	}
}
