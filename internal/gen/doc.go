// Package gen renders Fortran interface modules from a validated
// declaration file.
//
// Generation uses text/template with the helpers from package fortran:
//   - typecode prefixes routine names with the precision code of their kind
//   - rank emits the assumed-shape dimension attribute of array arguments
//
// Output is deterministic: routines and arguments keep declaration order.
package gen
