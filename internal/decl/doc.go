// Package decl defines the YAML declaration file describing the Fortran
// routines exported to MEX, along with loading, defaulting and validation.
//
// Example:
//
//	version: "1"
//	module: f2mex_interfaces
//	kind: REAL64
//	routines:
//	  - name: cumsum
//	    prefixed: true
//	    bind: mexcumsum
//	    args:
//	      - {name: n, type: integer}
//	      - {name: x, rank: 1}
//	      - {name: y, rank: 1, intent: out}
package decl
