package meshing

import (
	"errors"
	"fmt"
	"math"

	"BlockVision/visualizador/internal/field"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrAttributeMismatch indica geometrias com conjuntos de atributos diferentes.
	ErrAttributeMismatch = errors.New("geometrias com atributos incompatíveis")
	// ErrIndexOverflow indica que os índices combinados não cabem em uint16.
	ErrIndexOverflow = errors.New("índices excedem o limite de uint16")
)

// attributeSet descreve quais atributos opcionais uma geometria possui.
type attributeSet struct {
	normals, colors, uvs, indexed bool
}

func attributesOf(g GeometryData) attributeSet {
	return attributeSet{
		normals: len(g.Normals) > 0,
		colors:  len(g.Colors) > 0,
		uvs:     len(g.UVs) > 0,
		indexed: len(g.Indices) > 0,
	}
}

// Merge combina várias geometrias em um único buffer (1 draw call em vez de N).
// Todos os vértices de todas as entradas são preservados, sem deduplicação.
// Geometrias sem vértices são ignoradas; zero entradas resultam em geometria vazia.
func Merge(geos []GeometryData) (GeometryData, error) {
	var (
		attrs      attributeSet
		first      = true
		totalVerts int
		totalIdx   int
	)

	for i, g := range geos {
		if g.Empty() {
			continue
		}
		a := attributesOf(g)
		if first {
			attrs = a
			first = false
		} else if a != attrs {
			return GeometryData{}, fmt.Errorf("%w: entrada %d", ErrAttributeMismatch, i)
		}
		totalVerts += g.VertexCount()
		totalIdx += len(g.Indices)
	}

	if first {
		return GeometryData{}, nil
	}
	if attrs.indexed && totalVerts-1 > math.MaxUint16 {
		return GeometryData{}, fmt.Errorf("%w: %d vértices", ErrIndexOverflow, totalVerts)
	}

	merged := GeometryData{Vertices: make([]float32, 0, totalVerts*3)}
	if attrs.normals {
		merged.Normals = make([]float32, 0, totalVerts*3)
	}
	if attrs.colors {
		merged.Colors = make([]uint8, 0, totalVerts*4)
	}
	if attrs.uvs {
		merged.UVs = make([]float32, 0, totalVerts*2)
	}
	if attrs.indexed {
		merged.Indices = make([]uint16, 0, totalIdx)
	}

	for _, g := range geos {
		if g.Empty() {
			continue
		}
		offset := uint16(merged.VertexCount())
		merged.Vertices = append(merged.Vertices, g.Vertices...)
		merged.Normals = append(merged.Normals, g.Normals...)
		merged.Colors = append(merged.Colors, g.Colors...)
		merged.UVs = append(merged.UVs, g.UVs...)
		for _, idx := range g.Indices {
			merged.Indices = append(merged.Indices, idx+offset)
		}
	}

	return merged, nil
}

// BuildField cria um cubo unitário transladado para cada bloco e junta tudo
// em uma única geometria. Os limites são calculados na mesma passada.
func BuildField(blocks []field.Block, color [4]uint8) (GeometryData, field.Bounds, error) {
	var bounds field.Bounds
	if len(blocks) == 0 {
		return GeometryData{}, bounds, nil
	}

	cube := UnitCube(color)
	geos := make([]GeometryData, len(blocks))

	for i, block := range blocks {
		p := block.Position
		geos[i] = cube.Transform(mgl32.Translate3D(float32(p.X), float32(p.Y), float32(p.Z)))
		bounds.Include(p)
	}

	merged, err := Merge(geos)
	if err != nil {
		return GeometryData{}, bounds, err
	}
	return merged, bounds, nil
}
