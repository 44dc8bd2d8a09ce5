package utils_test

import (
	"math"
	"testing"

	"github.com/ItsTehBrian/Configurate/utils"
	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsInRange(math.MinInt8, -128, math.MaxInt8))
	assert.True(t, utils.IsInRange(0, 0x10FFFF, 0x10FFFF))
	assert.False(t, utils.IsInRange(0, -1, 10))
	assert.False(t, utils.IsInRange(-math.MaxFloat32, math.MaxFloat64, math.MaxFloat32))
}

func TestIsWhole(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsWhole(3.0))
	assert.True(t, utils.IsWhole(float32(-1e9)))
	assert.False(t, utils.IsWhole(2.5))
	assert.False(t, utils.IsWhole(math.Inf(1)))
	assert.False(t, utils.IsWhole(math.NaN()))
}
