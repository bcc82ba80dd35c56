package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIndex int

func (f fixedIndex) Intn(n int) int { return int(f) }

func TestPickEmpty(t *testing.T) {
	_, err := Pick(nil, fixedIndex(0))
	assert.ErrorIs(t, err, ErrNoDemos)
}

func TestPickUsesProvider(t *testing.T) {
	demos := []string{"blocos", "particulas"}

	got, err := Pick(demos, fixedIndex(1))
	require.NoError(t, err)
	assert.Equal(t, "particulas", got)

	_, err = Pick(demos, fixedIndex(2))
	assert.Error(t, err)
}

func TestPickCoversAllDemos(t *testing.T) {
	demos := []string{"blocos", "particulas"}
	rng := rand.New(rand.NewSource(7))

	seen := map[string]int{}
	for i := 0; i < 200; i++ {
		d, err := Pick(demos, rng)
		require.NoError(t, err)
		seen[d]++
	}
	assert.Len(t, seen, 2)
	assert.Greater(t, seen["blocos"], 50)
	assert.Greater(t, seen["particulas"], 50)
}
