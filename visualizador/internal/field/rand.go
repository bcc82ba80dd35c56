package field

import (
	"math/rand"
	"time"
)

// NewRand cria o gerador usado pelo visualizador. Semente 0 usa o relógio.
// Retorna também a semente efetiva, para que a cena possa ser reproduzida.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
