package decl

import (
	"fmt"
	"strings"

	"f2mex/fortran"
	"f2mex/internal/common"
	"f2mex/internal/diagnostic"
)

// Validate checks a declaration file after defaults have been applied.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	switch {
	case f.Module == "":
		res.AddError("missing_module", "module name is empty", "", "")
	case !IsFortranName(f.Module):
		res.AddError("invalid_name", fmt.Sprintf("module name %q is not a Fortran identifier", f.Module), "", "")
	}

	if _, ok := fortran.ParseRealKind(f.Kind); !ok {
		res.AddError("unknown_kind", fmt.Sprintf("unknown real kind %q", f.Kind), "", "")
	}

	// Fortran names are case-insensitive, bind labels are not.
	seen := map[string]struct{}{}
	binds := map[string]string{}

	for i := range f.Routines {
		r := &f.Routines[i]
		if r.Name == "" {
			res.AddError("missing_routine_name", fmt.Sprintf("routine #%d has no name", i+1), "", "")
			continue
		}

		name := r.FortranName()
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			res.AddError("duplicate_routine", fmt.Sprintf("duplicate routine %q", name), r.Name, "")
			continue
		}

		seen[key] = struct{}{}

		if r.Bind != "" {
			if other, ok := binds[r.Bind]; ok {
				res.AddError("duplicate_bind",
					fmt.Sprintf("bind label %q already used by %q", r.Bind, other), r.Name, "")
			} else {
				binds[r.Bind] = r.Name
			}
		}

		res.Merge(validateRoutine(r))
	}

	return res
}

func validateRoutine(r *Routine) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if name := r.FortranName(); !IsFortranName(name) {
		res.AddError("invalid_name", fmt.Sprintf("routine name %q is not a Fortran identifier", name), r.Name, "")
	}

	if r.Bind != "" && !IsBindName(r.Bind) {
		res.AddError("invalid_name", fmt.Sprintf("bind label %q is not a C identifier", r.Bind), r.Name, "")
	}

	kind := r.RealKind()
	if !kind.IsValid() {
		res.AddError("unknown_kind", fmt.Sprintf("unknown real kind %q", r.Kind), r.Name, "")
	} else if r.Prefixed && strings.HasPrefix(r.Name, kind.Code()) {
		res.AddWarning("double_prefix",
			fmt.Sprintf("prefixed routine name already starts with %q", kind.Code()), r.Name, "")
	}

	if len(r.Args) == 0 {
		res.AddWarning("no_args", "routine has no arguments", r.Name, "")
	}

	seen := map[string]struct{}{}

	for i := range r.Args {
		a := &r.Args[i]
		if a.Name == "" {
			res.AddError("missing_arg_name", fmt.Sprintf("argument #%d has no name", i+1), r.Name, "")
			continue
		}

		key := strings.ToLower(a.Name)
		if _, ok := seen[key]; ok {
			res.AddError("duplicate_arg", fmt.Sprintf("duplicate argument %q", a.Name), r.Name, a.Name)
			continue
		}

		seen[key] = struct{}{}

		validateArg(&res, r, a)
	}

	return res
}

func validateArg(res *diagnostic.Diagnostics, r *Routine, a *Arg) {
	if !IsFortranName(a.Name) {
		res.AddError("invalid_name", fmt.Sprintf("argument name %q is not a Fortran identifier", a.Name), r.Name, a.Name)
	}

	if !a.Type.IsValid() {
		res.AddError("unknown_type", fmt.Sprintf("unknown type %q", a.Type), r.Name, a.Name)
	}

	if a.Type == TypeReal {
		switch {
		case !a.RealKind().IsValid():
			res.AddError("unknown_kind", fmt.Sprintf("unknown real kind %q", a.Kind), r.Name, a.Name)
		case a.Kind != r.Kind:
			res.AddInfo("kind_override",
				fmt.Sprintf("argument kind %s differs from routine kind %s", a.Kind, r.Kind), r.Name, a.Name)
		}
	}

	if !a.Intent.IsValid() {
		res.AddError("unknown_intent", fmt.Sprintf("unknown intent %q", a.Intent), r.Name, a.Name)
	}

	switch {
	case a.Rank < 0:
		res.AddError("negative_rank", fmt.Sprintf("rank %d is negative", a.Rank), r.Name, a.Name)
	case !common.IsInRange(0, a.Rank, fortran.MaxRank):
		res.AddError("rank_exceeds_max",
			fmt.Sprintf("rank %d exceeds the Fortran limit of %d", a.Rank, fortran.MaxRank), r.Name, a.Name)
	}
}
