package util

import "golang.org/x/exp/constraints"

// History guarda as últimas amostras numa janela circular de tamanho fixo.
// Ao encher, a amostra mais antiga é sobrescrita.
type History[T constraints.Float] struct {
	entries []T
	next    uint64
	count   int
}

// NewHistory cria uma janela com a capacidade dada (mínimo 1).
func NewHistory[T constraints.Float](capacity int) *History[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &History[T]{entries: make([]T, capacity)}
}

// Push adiciona uma amostra.
func (h *History[T]) Push(v T) {
	h.entries[h.next%uint64(len(h.entries))] = v
	h.next++
	if h.count < len(h.entries) {
		h.count++
	}
}

// Len retorna quantas amostras estão na janela.
func (h *History[T]) Len() int {
	return h.count
}

// Average retorna a média da janela (0 se vazia).
func (h *History[T]) Average() T {
	if h.count == 0 {
		return 0
	}
	var sum T
	for _, v := range h.entries[:h.count] {
		sum += v
	}
	return sum / T(h.count)
}

// Peak retorna o maior valor da janela (0 se vazia).
func (h *History[T]) Peak() T {
	var peak T
	for i, v := range h.entries[:h.count] {
		if i == 0 || v > peak {
			peak = v
		}
	}
	return peak
}
