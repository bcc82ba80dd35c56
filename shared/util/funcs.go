package util

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Clamp limita v ao intervalo [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSq retorna a distância quadrada entre dois vetores 3D.
func DistSq(v1, v2 mgl32.Vec3) float32 {
	d := v1.Sub(v2)
	return d.Dot(d)
}

// Max retorna o maior de dois valores.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min retorna o menor de dois valores.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}
