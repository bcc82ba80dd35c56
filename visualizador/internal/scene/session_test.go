package scene

import (
	"image/color"
	"math/rand"
	"testing"

	"BlockVision/visualizador/internal/camera"
	"BlockVision/visualizador/internal/field"
	"BlockVision/visualizador/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer registra a ordem das chamadas.
type fakeRenderer struct {
	calls         []string
	width, height int32
	lastFar       float32
	lastClear     color.RGBA
}

func (r *fakeRenderer) Clear(bg color.RGBA) {
	r.calls = append(r.calls, "clear")
	r.lastClear = bg
}
func (r *fakeRenderer) Render(sc *Scene, cam *camera.Perspective) {
	r.calls = append(r.calls, "render")
	r.lastFar = cam.Far
}
func (r *fakeRenderer) SetSize(w, h int32) {
	r.calls = append(r.calls, "size")
	r.width, r.height = w, h
}

// fakeHost guarda os quadros pedidos e os executa sob demanda.
type fakeHost struct {
	pending  []func()
	requests int
}

func (h *fakeHost) RequestFrame(fn func()) {
	h.requests++
	h.pending = append(h.pending, fn)
}

// step executa o próximo quadro pendente.
func (h *fakeHost) step(t *testing.T) {
	t.Helper()
	require.NotEmpty(t, h.pending, "nenhum quadro agendado")
	fn := h.pending[0]
	h.pending = h.pending[1:]
	fn()
}

func newTestSession() (*Session, *fakeRenderer, *fakeHost) {
	r := &fakeRenderer{}
	h := &fakeHost{}
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	ctl := camera.NewOrbitControls(cam, nil)
	return NewSession(nil, r, h, cam, ctl), r, h
}

var whiteMat = &Material{Color: color.RGBA{255, 255, 255, 255}}

func TestAttachAddsSingleMesh(t *testing.T) {
	sc := New(color.RGBA{A: 255})
	blocks, err := field.Generate(rand.New(rand.NewSource(5)), 250, 30, 30, 30)
	require.NoError(t, err)

	bounds, err := Attach(sc, blocks, whiteMat)
	require.NoError(t, err)

	require.Equal(t, 1, sc.Len())
	mesh := sc.Meshes()[0]
	assert.Equal(t, 250*meshing.CubeVertexCount, mesh.Geometry.VertexCount())
	assert.Same(t, whiteMat, mesh.Material)
	assert.Equal(t, field.ComputeBounds(blocks), bounds)
}

func TestAttachEmptyLeavesSceneUnchanged(t *testing.T) {
	sc := New(color.RGBA{A: 255})

	bounds, err := Attach(sc, nil, whiteMat)

	require.NoError(t, err)
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, field.Bounds{}, bounds)
}

func TestSceneRemove(t *testing.T) {
	sc := New(color.RGBA{})
	a, b := &Mesh{}, &Mesh{}
	sc.Add(a)
	sc.Add(b)
	sc.Add(nil)

	require.Equal(t, 2, sc.Len())
	assert.True(t, sc.Remove(a))
	assert.False(t, sc.Remove(a))
	assert.Equal(t, []*Mesh{b}, sc.Meshes())
}

func TestBuildFitsCameraOnce(t *testing.T) {
	s, _, _ := newTestSession()
	blocks := []field.Block{
		{Position: field.NewCoord(1, 2, 3)},
		{Position: field.NewCoord(4, 0, 2)},
	}

	bounds, err := s.Build(blocks, whiteMat)
	require.NoError(t, err)

	assert.Equal(t, field.NewCoord(4, 2, 3), bounds.Largest)
	assert.Equal(t, field.Coord{}, bounds.Smallest)
	assert.Equal(t, mgl32.Vec3{2, 1, 1.5}, s.Controls.Target)
	assert.Equal(t, mgl32.Vec3{6, 3, 4.5}, s.Camera.Position)
	assert.Equal(t, float32(180), s.Camera.Far)

	// Um segundo Build não recalcula nada nem adiciona outra malha
	s.Camera.Position = mgl32.Vec3{9, 9, 9}
	again, err := s.Build([]field.Block{{Position: field.NewCoord(50, 50, 50)}}, whiteMat)
	require.NoError(t, err)
	assert.Equal(t, bounds, again)
	assert.Equal(t, mgl32.Vec3{9, 9, 9}, s.Camera.Position)
	assert.Equal(t, 1, s.Scene.Len())
}

func TestBuildEmptyClampsFar(t *testing.T) {
	s, _, _ := newTestSession()

	_, err := s.Build(nil, whiteMat)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Scene.Len())
	assert.Equal(t, camera.MinFar, s.Camera.Far)
}

func TestTickClearsThenRendersAndSchedulesOnce(t *testing.T) {
	s, r, h := newTestSession()
	_, err := s.Build([]field.Block{{Position: field.NewCoord(1, 2, 3)}}, whiteMat)
	require.NoError(t, err)

	s.Start()
	s.Start()
	require.Equal(t, 1, h.requests, "Start deve agendar um único quadro")
	assert.Empty(t, r.calls, "nada é desenhado antes do primeiro quadro")

	for i := 1; i <= 3; i++ {
		r.calls = nil
		h.step(t)

		assert.Equal(t, []string{"clear", "render"}, r.calls)
		assert.Equal(t, 1+i, h.requests)
		assert.Len(t, h.pending, 1)
		assert.Equal(t, uint64(i), s.Frames())
	}
}

func TestTickUpdatesProjectionFromCurrentParameters(t *testing.T) {
	s, r, h := newTestSession()
	_, err := s.Build([]field.Block{{Position: field.NewCoord(4, 2, 3)}}, whiteMat)
	require.NoError(t, err)

	s.Start()
	h.step(t)

	assert.Equal(t, float32(180), r.lastFar)
	want := mgl32.Perspective(mgl32.DegToRad(75), 1, 0.1, 180)
	assert.Equal(t, want, s.Camera.Projection)
}

func TestResize(t *testing.T) {
	s, r, _ := newTestSession()

	s.Resize(1920, 1080)
	assert.Equal(t, float32(1920)/float32(1080), s.Camera.Aspect)
	assert.Equal(t, int32(1920), r.width)
	assert.Equal(t, int32(1080), r.height)

	s.Resize(800, 600)
	assert.Equal(t, float32(800)/float32(600), s.Camera.Aspect)
	assert.Equal(t, int32(800), r.width)
	assert.Equal(t, int32(600), r.height)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(75), float32(800)/float32(600), 0.1, 1000), s.Camera.Projection)
}

// rotateInput gira a câmera uma única vez pelo deslocamento dado.
type rotateInput struct{ dx float32 }

func (i *rotateInput) PointerDelta() (float32, float32) {
	dx := i.dx
	i.dx = 0
	return dx, 0
}
func (i *rotateInput) RotateHeld() bool { return true }
func (i *rotateInput) PanHeld() bool    { return false }
func (i *rotateInput) Wheel() float32   { return 0 }

func TestResizeUpdatesControlsViewport(t *testing.T) {
	cam := camera.NewPerspective(75, 1, 0.1, 1000)
	input := &rotateInput{}
	s := NewSession(nil, &fakeRenderer{}, &fakeHost{}, cam, camera.NewOrbitControls(cam, input))
	cam.Position = mgl32.Vec3{0, 0, 10}

	// Com 600 px de altura, 150 px giram exatamente um quarto de volta
	s.Resize(800, 600)
	input.dx = 150
	s.Controls.Update()

	assert.InDelta(t, -10, cam.Position.X(), 1e-3)
	assert.InDelta(t, 0, cam.Position.Y(), 1e-3)
	assert.InDelta(t, 0, cam.Position.Z(), 1e-3)
}

func TestResizeIgnoresMinimizedWindow(t *testing.T) {
	s, r, _ := newTestSession()
	s.Resize(640, 480)
	r.calls = nil

	s.Resize(0, 0)

	assert.Empty(t, r.calls)
	assert.Equal(t, float32(640)/float32(480), s.Camera.Aspect)
}

func TestTickClearsWithSceneBackground(t *testing.T) {
	r := &fakeRenderer{}
	h := &fakeHost{}
	sc := New(color.RGBA{10, 20, 30, 255})
	s := NewSession(sc, r, h, nil, nil)

	s.Start()
	h.step(t)
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, r.lastClear)

	sc.Background = color.RGBA{200, 0, 0, 255}
	h.step(t)
	assert.Equal(t, color.RGBA{200, 0, 0, 255}, r.lastClear)
}

func TestNewSessionDefaultsCameraAndControls(t *testing.T) {
	r := &fakeRenderer{}
	h := &fakeHost{}
	s := NewSession(nil, r, h, nil, nil)

	require.NotNil(t, s.Camera)
	require.NotNil(t, s.Controls)
	assert.Equal(t, float32(DefaultFar), s.Camera.Far)

	_, err := s.Build([]field.Block{{Position: field.NewCoord(2, 2, 2)}}, whiteMat)
	require.NoError(t, err)
	s.Start()
	h.step(t)
	s.Resize(640, 480)

	assert.Equal(t, []string{"clear", "render", "size"}, r.calls)
	assert.Equal(t, s.Controls.Target, s.Camera.LookAt)
}

func TestSessionsAreIndependent(t *testing.T) {
	a, _, _ := newTestSession()
	b, _, _ := newTestSession()

	_, err := a.Build([]field.Block{{Position: field.NewCoord(10, 10, 10)}}, whiteMat)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Scene.Len())
	assert.Equal(t, 0, b.Scene.Len())
	assert.NotEqual(t, a.Camera.Position, b.Camera.Position)
}
