package fortran

import "text/template"

// FuncMap exposes the helpers to text/template.
// compREAL and ranksarray are kept for templates written against the old names.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"typecode":   TypeCode,
		"rank":       RankSuffix,
		"compREAL":   TypeCode,
		"ranksarray": RankSuffix,
	}
}
