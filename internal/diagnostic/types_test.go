package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Collect(t *testing.T) {
	d := &Diagnostics{}
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddWarning("rank_exceeds_max", "rank 16 exceeds 15", "cumsum", "x")
	d.AddInfo("note", "just a note", "", "")
	assert.False(t, d.HasErrors())

	d.AddError("unknown_kind", `unknown real kind "REAL16"`, "cumsum", "")
	d.AddError("duplicate_arg", `duplicate argument "n"`, "cumsum", "n")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[cumsum]: [unknown_kind] unknown real kind "REAL16"; [cumsum] n: [duplicate_arg] duplicate argument "n"`,
		err.Error())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)
	assert.Equal(t, SeverityInfo, all[3].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	a := Diagnostics{}
	a.AddError("a", "first", "", "")

	b := Diagnostics{}
	b.AddWarning("b", "second", "r", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[r]: [b] second", a.Warnings[0].String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}
