package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(0, 0, 15))
	assert.True(t, IsInRange(0, 15, 15))
	assert.False(t, IsInRange(0, 16, 15))
	assert.False(t, IsInRange(0, -1, 15))
	assert.True(t, IsInRange[uint8](1, 1, 1))
}
