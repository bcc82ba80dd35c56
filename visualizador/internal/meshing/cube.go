package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CubeVertexCount é o número de vértices de um cubo não indexado (6 faces x 2 triângulos).
const CubeVertexCount = 36

// UnitCube gera um cubo 1x1x1 centrado na origem.
func UnitCube(color [4]uint8) GeometryData {
	const h = 0.5
	b := &MeshBuffer{Geometry: GeometryData{
		Vertices: make([]float32, 0, CubeVertexCount*3),
		Normals:  make([]float32, 0, CubeVertexCount*3),
		Colors:   make([]uint8, 0, CubeVertexCount*4),
		UVs:      make([]float32, 0, CubeVertexCount*2),
	}}

	uv1, uv2, uv3, uv4 := [2]float32{0, 0}, [2]float32{1, 0}, [2]float32{1, 1}, [2]float32{0, 1}

	// Face Leste (+X)
	b.AddFaceUV(
		[3]float32{h, -h, h}, [3]float32{h, -h, -h}, [3]float32{h, h, -h}, [3]float32{h, h, h},
		uv1, uv2, uv3, uv4, [3]float32{1, 0, 0}, color,
	)
	// Face Oeste (-X)
	b.AddFaceUV(
		[3]float32{-h, -h, -h}, [3]float32{-h, -h, h}, [3]float32{-h, h, h}, [3]float32{-h, h, -h},
		uv1, uv2, uv3, uv4, [3]float32{-1, 0, 0}, color,
	)
	// Face Topo (+Y)
	b.AddFaceUV(
		[3]float32{-h, h, h}, [3]float32{h, h, h}, [3]float32{h, h, -h}, [3]float32{-h, h, -h},
		uv1, uv2, uv3, uv4, [3]float32{0, 1, 0}, color,
	)
	// Face Baixo (-Y)
	b.AddFaceUV(
		[3]float32{-h, -h, -h}, [3]float32{h, -h, -h}, [3]float32{h, -h, h}, [3]float32{-h, -h, h},
		uv1, uv2, uv3, uv4, [3]float32{0, -1, 0}, color,
	)
	// Face Norte (+Z)
	b.AddFaceUV(
		[3]float32{-h, -h, h}, [3]float32{h, -h, h}, [3]float32{h, h, h}, [3]float32{-h, h, h},
		uv1, uv2, uv3, uv4, [3]float32{0, 0, 1}, color,
	)
	// Face Sul (-Z)
	b.AddFaceUV(
		[3]float32{h, -h, -h}, [3]float32{-h, -h, -h}, [3]float32{-h, h, -h}, [3]float32{h, h, -h},
		uv1, uv2, uv3, uv4, [3]float32{0, 0, -1}, color,
	)

	return b.Geometry
}

// Transform devolve uma cópia da geometria com a matriz m aplicada.
// Posições usam w=1; normais usam a matriz normal (inversa transposta do 3x3).
func (g GeometryData) Transform(m mgl32.Mat4) GeometryData {
	out := g.Clone()

	for i := 0; i+2 < len(out.Vertices); i += 3 {
		v := m.Mul4x1(mgl32.Vec4{out.Vertices[i], out.Vertices[i+1], out.Vertices[i+2], 1})
		out.Vertices[i], out.Vertices[i+1], out.Vertices[i+2] = v.X(), v.Y(), v.Z()
	}

	if len(out.Normals) == 0 {
		return out
	}

	normalMat := m.Mat3().Inv().Transpose()
	if normalMat == (mgl32.Mat3{}) {
		// Matriz singular: mantém as normais originais
		return out
	}
	if normalMat == mgl32.Ident3() {
		return out
	}
	for i := 0; i+2 < len(out.Normals); i += 3 {
		n := normalMat.Mul3x1(mgl32.Vec3{out.Normals[i], out.Normals[i+1], out.Normals[i+2]})
		if n.Len() > 0 {
			n = n.Normalize()
		}
		out.Normals[i], out.Normals[i+1], out.Normals[i+2] = n.X(), n.Y(), n.Z()
	}
	return out
}
