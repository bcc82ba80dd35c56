package scene

import (
	"image/color"

	"BlockVision/visualizador/internal/field"
	"BlockVision/visualizador/internal/meshing"
)

// Material é um material plano, sem iluminação.
type Material struct {
	Color     color.RGBA
	Wireframe bool
}

// Mesh une uma geometria a um material.
type Mesh struct {
	Geometry meshing.GeometryData
	Material *Material
}

// Scene é o grafo de cena: uma lista de malhas e a cor de fundo.
type Scene struct {
	Background color.RGBA
	meshes     []*Mesh
}

// New cria uma cena vazia.
func New(background color.RGBA) *Scene {
	return &Scene{Background: background}
}

// Add adiciona uma malha à cena.
func (s *Scene) Add(m *Mesh) {
	if m == nil {
		return
	}
	s.meshes = append(s.meshes, m)
}

// Remove retira uma malha da cena. Retorna false se ela não estava presente.
func (s *Scene) Remove(m *Mesh) bool {
	for i, cur := range s.meshes {
		if cur == m {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return true
		}
	}
	return false
}

// Meshes retorna as malhas da cena (somente leitura).
func (s *Scene) Meshes() []*Mesh {
	return s.meshes
}

// Len retorna o número de malhas na cena.
func (s *Scene) Len() int {
	return len(s.meshes)
}

// Attach transforma os blocos em uma única malha e a adiciona à cena.
// Uma lista vazia não altera a cena e devolve limites zerados.
func Attach(sc *Scene, blocks []field.Block, mat *Material) (field.Bounds, error) {
	if len(blocks) == 0 {
		return field.Bounds{}, nil
	}

	// Vértices brancos: a cor final vem do material
	geo, bounds, err := meshing.BuildField(blocks, [4]uint8{255, 255, 255, 255})
	if err != nil {
		return field.Bounds{}, err
	}

	sc.Add(&Mesh{Geometry: geo, Material: mat})
	return bounds, nil
}
