package field

// Bounds guarda o maior e o menor valor observado em cada eixo.
// Ambos começam em (0,0,0) e a semente participa do min/max como um
// candidato real.
type Bounds struct {
	Largest  Coord
	Smallest Coord
}

// Include expande os limites para conter a coordenada c.
func (b *Bounds) Include(c Coord) {
	if b.Largest.X < c.X {
		b.Largest.X = c.X
	}
	if b.Largest.Y < c.Y {
		b.Largest.Y = c.Y
	}
	if b.Largest.Z < c.Z {
		b.Largest.Z = c.Z
	}
	if b.Smallest.X > c.X {
		b.Smallest.X = c.X
	}
	if b.Smallest.Y > c.Y {
		b.Smallest.Y = c.Y
	}
	if b.Smallest.Z > c.Z {
		b.Smallest.Z = c.Z
	}
}

// ComputeBounds calcula os limites de uma lista de blocos.
func ComputeBounds(blocks []Block) Bounds {
	var b Bounds
	for _, block := range blocks {
		b.Include(block.Position)
	}
	return b
}

// Span retorna a extensão (Largest - Smallest) em cada eixo.
// A conta é feita em int64 para não estourar perto dos extremos de int32.
func (b Bounds) Span() (x, y, z int64) {
	x = int64(b.Largest.X) - int64(b.Smallest.X)
	y = int64(b.Largest.Y) - int64(b.Smallest.Y)
	z = int64(b.Largest.Z) - int64(b.Smallest.Z)
	return x, y, z
}

// Center retorna o ponto médio entre Largest e Smallest.
func (b Bounds) Center() (x, y, z float32) {
	x = float32((int64(b.Largest.X) + int64(b.Smallest.X))) / 2
	y = float32((int64(b.Largest.Y) + int64(b.Smallest.Y))) / 2
	z = float32((int64(b.Largest.Z) + int64(b.Smallest.Z))) / 2
	return x, y, z
}
