package fortran_test

import (
	"bytes"
	"math"
	"strings"
	"sync"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f2mex/fortran"
)

func TestRankSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rank int
		want string
	}{
		{0, ""},
		{1, "dimension(:),"},
		{2, "dimension(:,:),"},
		{3, "dimension(:,:,:),"},
		{fortran.MaxRank, "dimension(" + strings.Repeat(":,", fortran.MaxRank-1) + ":),"},
		{fortran.MaxRank + 1, "dimension(" + strings.Repeat(":,", fortran.MaxRank) + ":),"},
	}

	for _, tt := range tests {
		got, err := fortran.RankSuffix(tt.rank)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "rank %d", tt.rank)
		assert.Equal(t, tt.rank, strings.Count(got, ":"))
	}
}

func TestRankSuffix_Negative(t *testing.T) {
	t.Parallel()

	for _, rank := range []int{-1, -3, -1 << 20} {
		got, err := fortran.RankSuffix(rank)
		require.ErrorIs(t, err, fortran.ErrInvalidArgument)
		assert.Empty(t, got)
	}
}

func TestRankSuffix_Overflow(t *testing.T) {
	t.Parallel()

	for _, rank := range []int{math.MaxInt, math.MaxInt / 2, math.MaxInt/2 - 4} {
		var (
			got string
			err error
		)

		assert.NotPanics(t, func() { got, err = fortran.RankSuffix(rank) })
		require.ErrorIs(t, err, fortran.ErrInvalidArgument, "rank %d", rank)
		assert.Empty(t, got)
	}
}

func TestHelpers_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		i := i
		wg.Add(1)

		go func() {
			defer wg.Done()

			rank := i % 4
			s, err := fortran.RankSuffix(rank)
			assert.NoError(t, err)
			assert.Equal(t, rank, strings.Count(s, ":"))
			assert.Equal(t, "d", fortran.TypeCode("REAL64"))
		}()
	}

	wg.Wait()
}

func TestFuncMap(t *testing.T) {
	t.Parallel()

	const text = `real(kind={{.Kind}}), {{rank .Rank}} intent(in) :: {{typecode .Kind}}x
{{compREAL "REAL32"}}|{{ranksarray 0}}|`

	tmpl, err := template.New("decl").Funcs(fortran.FuncMap()).Parse(text)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{"Kind": "REAL64", "Rank": 2})
	require.NoError(t, err)
	assert.Equal(t, "real(kind=REAL64), dimension(:,:), intent(in) :: dx\ns||", buf.String())

	buf.Reset()
	err = tmpl.Execute(&buf, map[string]any{"Kind": "REAL64", "Rank": -1})
	require.ErrorIs(t, err, fortran.ErrInvalidArgument)
}
