package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument indica parâmetros inválidos para a geração do campo.
var ErrInvalidArgument = errors.New("argumento inválido")

// Coord representa a posição inteira de um bloco no espaço 3D.
type Coord struct {
	X, Y, Z int32
}

// NewCoord cria uma nova coordenada.
func NewCoord(x, y, z int32) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// String retorna a representação em string da coordenada.
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// MaxAxis é o maior limite de eixo aceito; coordenadas são int32.
const MaxAxis = math.MaxInt32

// Block é um cubo unitário posicionado no campo.
// A geometria do bloco é criada e consumida pelo pacote meshing.
type Block struct {
	Position Coord
}

// Source é a fonte de aleatoriedade usada na geração.
// *rand.Rand satisfaz esta interface.
type Source interface {
	Intn(n int) int
}

// Generate cria count blocos com coordenadas sorteadas uniformemente em
// [0, maxX) × [0, maxY) × [0, maxZ). Posições repetidas são permitidas.
func Generate(rng Source, count, maxX, maxY, maxZ int) ([]Block, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: fonte aleatória nula", ErrInvalidArgument)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: quantidade de blocos negativa (%d)", ErrInvalidArgument, count)
	}
	if maxX <= 0 || maxY <= 0 || maxZ <= 0 {
		return nil, fmt.Errorf("%w: limites devem ser positivos (%d, %d, %d)", ErrInvalidArgument, maxX, maxY, maxZ)
	}
	if maxX > MaxAxis || maxY > MaxAxis || maxZ > MaxAxis {
		return nil, fmt.Errorf("%w: limites acima de %d (%d, %d, %d)", ErrInvalidArgument, MaxAxis, maxX, maxY, maxZ)
	}

	blocks := make([]Block, 0, count)
	for i := 0; i < count; i++ {
		blocks = append(blocks, Block{
			Position: Coord{
				X: int32(rng.Intn(maxX)),
				Y: int32(rng.Intn(maxY)),
				Z: int32(rng.Intn(maxZ)),
			},
		})
	}
	return blocks, nil
}
