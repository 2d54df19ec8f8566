package fortran

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxRank is the largest array rank allowed by Fortran 2008.
// RankSuffix does not enforce it.
const MaxRank = 15

// maxSuffixRank is the largest rank whose suffix length, 2*rank+11,
// still fits in an int.
const maxSuffixRank = (math.MaxInt - 11) / 2

// ErrInvalidArgument is returned for inputs outside of a function's domain.
var ErrInvalidArgument = errors.New("invalid argument")

// RankSuffix returns the assumed-shape attribute for an array of the given
// rank, e.g. "dimension(:,:,:)," for rank 3. The trailing comma lets the
// result sit between a type spec and the next attribute. Rank 0 (a scalar)
// yields "".
func RankSuffix(rank int) (string, error) {
	switch {
	case rank < 0:
		return "", fmt.Errorf("rank %d: %w", rank, ErrInvalidArgument)
	case rank == 0:
		return "", nil
	case rank > maxSuffixRank:
		return "", fmt.Errorf("rank %d: suffix length overflows int: %w", rank, ErrInvalidArgument)
	}

	return "dimension(" + strings.Repeat(":,", rank-1) + ":),", nil
}
