package util

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(42, 0, 10))
	assert.Equal(t, float32(0.1), Clamp(float32(0), 0.1, 1))
}

func TestDistSq(t *testing.T) {
	assert.Equal(t, float32(25), DistSq(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0}))
	assert.Equal(t, float32(0), DistSq(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, int32(9), Max(int32(3), int32(9)))
	assert.Equal(t, int32(3), Min(int32(3), int32(9)))
	assert.Equal(t, float32(-1), Min(float32(-1), float32(0)))
}
