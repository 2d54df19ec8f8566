// Package diagnostic provides structured warnings and errors reported while
// checking a declaration file before any Fortran source is generated.
//
// Each diagnostic carries a stable code plus the routine and argument it
// refers to, so the CLI can print precise locations.
package diagnostic
