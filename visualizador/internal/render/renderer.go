package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"image/color"
	"log"
	"unsafe"

	"BlockVision/visualizador/internal/camera"
	"BlockVision/visualizador/internal/meshing"
	"BlockVision/visualizador/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer desenha uma scene.Scene usando a Raylib.
// As malhas são enviadas para a GPU na primeira vez que aparecem na cena.
type Renderer struct {
	models map[*scene.Mesh]rl.Model

	Wireframe bool // Força todas as malhas em modo aramado
	ShowGrid  bool

	// Extra desenha conteúdo adicional dentro do modo 3D (partículas, etc).
	Extra func()
	// Overlay desenha a interface 2D depois da cena.
	Overlay func()

	// Estatísticas do último quadro
	DrawnMeshes    int
	DrawnTriangles int
}

// NewRenderer cria um novo renderizador.
func NewRenderer() *Renderer {
	return &Renderer{
		models: make(map[*scene.Mesh]rl.Model),
	}
}

// Clear limpa o framebuffer com a cor de fundo da cena.
func (r *Renderer) Clear(background color.RGBA) {
	rl.ClearBackground(ColorToRL(background))
}

// Render desenha todas as malhas da cena a partir da câmera.
func (r *Renderer) Render(sc *scene.Scene, cam *camera.Perspective) {
	r.syncModels(sc)

	rl.BeginMode3D(CameraToRL(cam))
	// BeginMode3D usa planos de corte fixos; a projeção da câmera respeita Near/Far
	rl.SetMatrixProjection(MatToRL(cam.Projection))

	if r.ShowGrid {
		rl.DrawGrid(100, 10)
	}

	r.DrawnMeshes = 0
	r.DrawnTriangles = 0
	for _, m := range sc.Meshes() {
		model, ok := r.models[m]
		if !ok {
			continue
		}
		tint := rl.White
		wire := r.Wireframe
		if m.Material != nil {
			tint = ColorToRL(m.Material.Color)
			wire = wire || m.Material.Wireframe
		}
		if wire {
			rl.DrawModelWires(model, rl.Vector3{}, 1.0, tint)
		} else {
			rl.DrawModel(model, rl.Vector3{}, 1.0, tint)
		}
		r.DrawnMeshes++
		r.DrawnTriangles += m.Geometry.TriangleCount()
	}

	if r.Extra != nil {
		r.Extra()
	}

	rl.EndMode3D()

	if r.Overlay != nil {
		r.Overlay()
	}
}

// SetSize ajusta a janela ao tamanho de saída quando eles diferem.
func (r *Renderer) SetSize(width, height int32) {
	if !rl.IsWindowReady() {
		return
	}
	if int32(rl.GetScreenWidth()) != width || int32(rl.GetScreenHeight()) != height {
		rl.SetWindowSize(int(width), int(height))
	}
}

// syncModels envia malhas novas para a GPU e descarrega as que saíram da cena.
func (r *Renderer) syncModels(sc *scene.Scene) {
	if !rl.IsWindowReady() {
		return
	}

	alive := make(map[*scene.Mesh]bool, sc.Len())
	for _, m := range sc.Meshes() {
		alive[m] = true
		if _, ok := r.models[m]; ok || m.Geometry.Empty() {
			continue
		}

		mesh := r.geometryToMesh(m.Geometry)
		rl.UploadMesh(&mesh, false)
		r.models[m] = rl.LoadModelFromMesh(mesh)

		log.Printf("[Renderer] Upload de Geometria: %d vértices, %d triângulos",
			m.Geometry.VertexCount(), m.Geometry.TriangleCount())
	}

	for m, model := range r.models {
		if !alive[m] {
			rl.UnloadModel(model)
			delete(r.models, m)
		}
	}
}

func (r *Renderer) geometryToMesh(data meshing.GeometryData) rl.Mesh {
	var mesh rl.Mesh
	mesh.VertexCount = int32(data.VertexCount())
	mesh.TriangleCount = int32(data.TriangleCount())

	if len(data.Vertices) > 0 {
		mesh.Vertices = (*float32)(r.copyToC(unsafe.Pointer(&data.Vertices[0]), len(data.Vertices)*4))
	}
	if len(data.Normals) > 0 {
		mesh.Normals = (*float32)(r.copyToC(unsafe.Pointer(&data.Normals[0]), len(data.Normals)*4))
	}
	if len(data.Colors) > 0 {
		mesh.Colors = (*uint8)(r.copyToC(unsafe.Pointer(&data.Colors[0]), len(data.Colors)))
	}
	if len(data.UVs) > 0 {
		mesh.Texcoords = (*float32)(r.copyToC(unsafe.Pointer(&data.UVs[0]), len(data.UVs)*4))
	}
	if len(data.Indices) > 0 {
		mesh.Indices = (*uint16)(r.copyToC(unsafe.Pointer(&data.Indices[0]), len(data.Indices)*2))
	}
	return mesh
}

// copyToC copia um buffer Go para memória C; a Raylib libera com free() no UnloadModel.
func (r *Renderer) copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// Unload descarrega todos os modelos da GPU.
func (r *Renderer) Unload() {
	for _, model := range r.models {
		rl.UnloadModel(model)
	}
	r.models = make(map[*scene.Mesh]rl.Model)
}
