package main

import (
	"errors"
	"fmt"
)

// ErrNoDemos indica que não há demonstrações para sortear.
var ErrNoDemos = errors.New("nenhuma demonstração configurada")

// IndexProvider sorteia um índice em [0, n). *rand.Rand satisfaz esta interface.
type IndexProvider interface {
	Intn(n int) int
}

// Pick escolhe uma demonstração uniformemente.
func Pick(demos []string, rng IndexProvider) (string, error) {
	if len(demos) == 0 {
		return "", ErrNoDemos
	}
	i := rng.Intn(len(demos))
	if i < 0 || i >= len(demos) {
		return "", fmt.Errorf("índice sorteado fora da faixa: %d", i)
	}
	return demos[i], nil
}
