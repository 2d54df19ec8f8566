package fortran_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"f2mex/fortran"
)

func Example() {
	fmt.Printf("%q\n", fortran.TypeCode("REAL64"))
	fmt.Printf("%q\n", fortran.TypeCode("REAL32"))
	fmt.Printf("%q\n", fortran.TypeCode("real64"))
	fmt.Println(fortran.RealKindREAL64)
	fmt.Println(fortran.RealKind(0))
	// Output:
	// "d"
	// "s"
	// ""
	// RealKindREAL64
	// RealKind(0)
}

func TestTypeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"REAL64", "d"},
		{"REAL32", "s"},
		{"real64", ""},
		{"Real32", ""},
		{"", ""},
		{"REAL128", ""},
		{"REAL16", ""},
		{" REAL64", ""},
		{"REAL64 ", ""},
		{"INT32", ""},
		{"d", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fortran.TypeCode(tt.in))
			assert.Equal(t, fortran.TypeCode(tt.in), fortran.TypeCode(tt.in))
		})
	}
}

func TestRealKind(t *testing.T) {
	t.Parallel()

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		k, ok := fortran.ParseRealKind("REAL32")
		assert.True(t, ok)
		assert.Equal(t, fortran.RealKindREAL32, k)

		k, ok = fortran.ParseRealKind("REAL64")
		assert.True(t, ok)
		assert.Equal(t, fortran.RealKindREAL64, k)

		k, ok = fortran.ParseRealKind("real32")
		assert.False(t, ok)
		assert.False(t, k.IsValid())
	})

	t.Run("round trip through name and code", func(t *testing.T) {
		t.Parallel()

		for k := fortran.RealKind(1); int(k) < fortran.RealKindTotal; k++ {
			assert.True(t, k.IsValid())

			parsed, ok := fortran.ParseRealKind(k.Name())
			assert.True(t, ok)
			assert.Equal(t, k, parsed)
			assert.Equal(t, fortran.TypeCode(k.Name()), k.Code())
			assert.NotEmpty(t, k.Code())
		}
	})

	t.Run("bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 4, fortran.RealKindREAL32.Bytes())
		assert.Equal(t, 8, fortran.RealKindREAL64.Bytes())
		assert.Panics(t, func() { fortran.RealKind(0).Bytes() })
	})

	t.Run("invalid kind", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, fortran.RealKind(0).Name())
		assert.Empty(t, fortran.RealKind(0).Code())
		assert.False(t, fortran.RealKind(fortran.RealKindTotal).IsValid())
	})
}
