package camera

import (
	"math"
	"testing"

	"BlockVision/visualizador/internal/field"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInput devolve a entrada configurada uma única vez, como a raylib
// faz com o delta do mouse entre quadros.
type fakeInput struct {
	dx, dy float32
	rotate bool
	pan    bool
	wheel  float32
}

func (f *fakeInput) PointerDelta() (float32, float32) {
	dx, dy := f.dx, f.dy
	f.dx, f.dy = 0, 0
	return dx, dy
}
func (f *fakeInput) RotateHeld() bool { return f.rotate }
func (f *fakeInput) PanHeld() bool    { return f.pan }
func (f *fakeInput) Wheel() float32 {
	w := f.wheel
	f.wheel = 0
	return w
}

func bounds(blocks ...field.Coord) field.Bounds {
	var b field.Bounds
	for _, c := range blocks {
		b.Include(c)
	}
	return b
}

func TestFitSingleBlockAtOrigin(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, nil)

	Fit(bounds(field.NewCoord(0, 0, 0)), cam, ctl)

	assert.Equal(t, mgl32.Vec3{0, 0, 0}, ctl.Target)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Position)
	assert.Equal(t, MinFar, cam.Far, "plano distante zero deve ser limitado ao mínimo")
}

func TestFitTwoBlocks(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, nil)

	Fit(bounds(field.NewCoord(1, 2, 3), field.NewCoord(4, 0, 2)), cam, ctl)

	assert.Equal(t, mgl32.Vec3{2, 1, 1.5}, ctl.Target)
	assert.Equal(t, mgl32.Vec3{6, 3, 4.5}, cam.Position)
	assert.Equal(t, float32(180), cam.Far)
	assert.Equal(t, ctl.Target, cam.LookAt)
}

func TestFitKeepsOriginHeuristic(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, nil)

	b := field.Bounds{Largest: field.NewCoord(110, 110, 110), Smallest: field.NewCoord(100, 100, 100)}
	Fit(b, cam, ctl)

	// Posição absoluta a partir da origem, não relativa ao alvo
	assert.Equal(t, mgl32.Vec3{165, 165, 165}, cam.Position)
	assert.Equal(t, mgl32.Vec3{105, 105, 105}, ctl.Target)
	assert.Equal(t, float32(600), cam.Far)
}

func TestFitFarPlaneNearInt32Limit(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, nil)
	edge := int32(math.MaxInt32 - 1)

	Fit(bounds(field.NewCoord(edge, edge, 9)), cam, ctl)

	want := (float32(edge) + float32(edge) + 9) * FarScale
	assert.InEpsilon(t, want, cam.Far, 1e-6)
	assert.Greater(t, cam.Far, MinFar)
	assert.Greater(t, ctl.Target.X(), float32(1e9))
}

func TestUpdateProjectionMatrix(t *testing.T) {
	cam := NewPerspective(75, 16.0/9.0, 0.1, 1000)
	before := cam.Projection

	cam.Far = 180
	assert.Equal(t, before, cam.Projection, "a projeção só muda em UpdateProjectionMatrix")

	cam.UpdateProjectionMatrix()
	assert.NotEqual(t, before, cam.Projection)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(75), 16.0/9.0, 0.1, 180), cam.Projection)
}

func TestUpdateProjectionMatrixZeroAspect(t *testing.T) {
	cam := NewPerspective(75, 0, 0.1, 1000)
	for _, v := range cam.Projection {
		assert.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0))
	}
}

func TestViewOnTargetDoesNotProduceNaN(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	cam.Position = mgl32.Vec3{}
	cam.LookAt = mgl32.Vec3{}

	for _, v := range cam.View() {
		assert.False(t, math.IsNaN(float64(v)))
	}
}

func TestOrbitUpdateWithoutInputKeepsPosition(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, &fakeInput{})
	Fit(bounds(field.NewCoord(1, 2, 3), field.NewCoord(4, 0, 2)), cam, ctl)

	moved := ctl.Update()

	assert.False(t, moved)
	assert.True(t, cam.Position.ApproxEqualThreshold(mgl32.Vec3{6, 3, 4.5}, 1e-4), "posição %v", cam.Position)
	assert.Equal(t, ctl.Target, cam.LookAt)
}

func TestOrbitUpdateDegenerateOffset(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	ctl := NewOrbitControls(cam, nil)
	Fit(bounds(field.NewCoord(0, 0, 0)), cam, ctl)

	ctl.Update()

	for _, v := range cam.Position {
		require.False(t, math.IsNaN(float64(v)))
	}
	assert.InDelta(t, ctl.MinDistance, cam.Position.Sub(ctl.Target).Len(), 1e-5)
}

func TestOrbitZoom(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	input := &fakeInput{}
	ctl := NewOrbitControls(cam, input)
	ctl.ZoomSpeed = 2
	cam.Position = mgl32.Vec3{0, 0, 100}

	input.wheel = 1
	require.True(t, ctl.Update())

	want := float32(100 * math.Pow(0.95, 2))
	assert.InDelta(t, want, cam.Position.Len(), 1e-3)

	input.wheel = -1
	ctl.Update()
	assert.InDelta(t, 100, cam.Position.Len(), 1e-3)
}

func TestOrbitZoomRespectsLimits(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	input := &fakeInput{}
	ctl := NewOrbitControls(cam, input)
	ctl.MinDistance = 10
	ctl.MaxDistance = 50
	cam.Position = mgl32.Vec3{0, 0, 20}

	input.wheel = 100
	ctl.Update()
	assert.InDelta(t, 10, cam.Position.Len(), 1e-4)

	input.wheel = -1000
	ctl.Update()
	assert.InDelta(t, 50, cam.Position.Len(), 1e-3)
}

func TestOrbitRotateKeepsDistance(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	input := &fakeInput{}
	ctl := NewOrbitControls(cam, input)
	ctl.SetViewport(800, 600)
	ctl.Target = mgl32.Vec3{5, 5, 5}
	cam.Position = mgl32.Vec3{5, 5, 25}

	input.rotate = true
	input.dx, input.dy = 150, 0 // um quarto de volta: 2π*150/600 = π/2
	require.True(t, ctl.Update())

	assert.InDelta(t, 20, cam.Position.Sub(ctl.Target).Len(), 1e-3)
	assert.True(t, cam.Position.ApproxEqualThreshold(mgl32.Vec3{-15, 5, 5}, 1e-3), "posição %v", cam.Position)
}

func TestOrbitRotateClampsPolarAngle(t *testing.T) {
	cam := NewPerspective(75, 1, 0.1, 1000)
	input := &fakeInput{rotate: true}
	ctl := NewOrbitControls(cam, input)
	cam.Position = mgl32.Vec3{0, 0, 10}

	input.dy = 100000
	ctl.Update()

	// A câmera para logo antes do polo em vez de passar para o outro lado
	offset := cam.Position.Sub(ctl.Target)
	assert.InDelta(t, 10, offset.Y(), 1e-3)
	assert.Greater(t, offset.Z(), float32(0))
}

func TestOrbitPanMovesTargetAndCamera(t *testing.T) {
	cam := NewPerspective(90, 1, 0.1, 1000)
	input := &fakeInput{pan: true}
	ctl := NewOrbitControls(cam, input)
	ctl.SetViewport(100, 100)
	cam.Position = mgl32.Vec3{0, 0, 10}

	input.dx = -10
	require.True(t, ctl.Update())

	// tan(45°)*10 = 10 unidades visíveis na metade da altura; 2*10/100 por pixel
	assert.InDelta(t, 2, ctl.Target.X(), 1e-3)
	assert.InDelta(t, 2, cam.Position.X(), 1e-3)
	assert.InDelta(t, 10, cam.Position.Z(), 1e-3)
}

func TestSetViewportIgnoresInvalidSize(t *testing.T) {
	ctl := NewOrbitControls(NewPerspective(75, 1, 0.1, 1000), nil)
	ctl.SetViewport(0, 0)
	assert.Equal(t, float32(720), ctl.viewportHeight)

	ctl.SetViewport(640, 480)
	assert.Equal(t, float32(640), ctl.viewportWidth)
	assert.Equal(t, float32(480), ctl.viewportHeight)
}
