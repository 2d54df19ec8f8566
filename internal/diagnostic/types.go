package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"f2mex/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Routine identifies which routine this relates to (if any).
	Routine string
	// Arg identifies which dummy argument this relates to (if any).
	Arg string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev Severity, code, message, routine, arg string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Routine:  routine,
		Arg:      arg,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, routine, arg string) {
	d.add(SeverityError, code, message, routine, arg)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, routine, arg string) {
	d.add(SeverityWarning, code, message, routine, arg)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, routine, arg string) {
	d.add(SeverityInfo, code, message, routine, arg)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, then warnings, then infos.
func (d *Diagnostics) All() []Diagnostic {
	res := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	res = append(res, d.Errors...)
	res = append(res, d.Warnings...)

	return append(res, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Routine != "" {
		prefix = append(prefix, "["+d.Routine+"]")
	}

	if d.Arg != "" {
		prefix = append(prefix, d.Arg)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
