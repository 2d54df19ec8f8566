// Package fortran holds the string helpers used when emitting Fortran
// interface declarations: real kind names to precision codes and array
// ranks to dimension attributes.
//
// All functions are pure and safe for concurrent use.
package fortran
