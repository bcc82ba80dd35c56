package camera

import (
	"BlockVision/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Input é a fonte de entrada acumulada entre dois quadros.
type Input interface {
	PointerDelta() (dx, dy float32) // Deslocamento do mouse em pixels
	RotateHeld() bool               // Botão de órbita pressionado
	PanHeld() bool                  // Botão de arrasto lateral pressionado
	Wheel() float32                 // Rolagem (positivo = aproximar)
}

// Limite para o ângulo polar, evita que a câmera vire de ponta cabeça.
const polarEpsilon = 1e-4

// OrbitControls orbita a câmera em torno de Target usando coordenadas esféricas.
// A posição da câmera é a fonte da verdade: Update parte dela a cada quadro,
// então quem posiciona a câmera diretamente (como Fit) não é sobrescrito.
type OrbitControls struct {
	Target mgl32.Vec3

	ZoomSpeed   float32
	RotateSpeed float32
	PanSpeed    float32
	MinDistance float32
	MaxDistance float32 // 0 = sem limite

	EnableZoom   bool
	EnableRotate bool
	EnablePan    bool

	camera *Perspective
	input  Input

	viewportWidth  float32
	viewportHeight float32
}

// NewOrbitControls cria controles de órbita para a câmera informada.
// input pode ser nil (controles apenas mantêm a câmera mirando o alvo).
func NewOrbitControls(cam *Perspective, input Input) *OrbitControls {
	return &OrbitControls{
		ZoomSpeed:      1.0,
		RotateSpeed:    1.0,
		PanSpeed:       1.0,
		MinDistance:    0.1,
		EnableZoom:     true,
		EnableRotate:   true,
		EnablePan:      true,
		camera:         cam,
		input:          input,
		viewportWidth:  1280,
		viewportHeight: 720,
	}
}

// SetViewport informa o tamanho da área de desenho usado para escalar o mouse.
func (c *OrbitControls) SetViewport(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.viewportWidth = float32(width)
	c.viewportHeight = float32(height)
}

// zoomScale retorna o fator de escala do raio para um passo de rolagem.
func (c *OrbitControls) zoomScale(steps float32) float32 {
	return math32.Pow(0.95, c.ZoomSpeed*steps)
}

// Update aplica a entrada acumulada e reposiciona a câmera.
// Retorna true se houve movimento vindo do usuário.
func (c *OrbitControls) Update() bool {
	cam := c.camera
	if cam == nil {
		return false
	}

	offset := cam.Position.Sub(c.Target)
	radius := offset.Len()

	// Coordenadas esféricas (Y é UP)
	theta := float32(0)
	phi := float32(math32.Pi / 2)
	if radius > 0 {
		theta = math32.Atan2(offset.X(), offset.Z())
		phi = math32.Acos(util.Clamp(offset.Y()/radius, -1, 1))
	}

	moved := false
	if c.input != nil {
		dx, dy := c.input.PointerDelta()

		if c.EnableRotate && c.input.RotateHeld() && (dx != 0 || dy != 0) {
			theta -= 2 * math32.Pi * dx / c.viewportHeight * c.RotateSpeed
			phi -= 2 * math32.Pi * dy / c.viewportHeight * c.RotateSpeed
			moved = true
		}

		if c.EnablePan && c.input.PanHeld() && (dx != 0 || dy != 0) {
			c.pan(dx, dy, radius)
			moved = true
		}

		if wheel := c.input.Wheel(); c.EnableZoom && wheel != 0 {
			radius *= c.zoomScale(wheel)
			moved = true
		}
	}

	phi = util.Clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)
	radius = util.Max(radius, c.MinDistance)
	if c.MaxDistance > 0 {
		radius = util.Min(radius, c.MaxDistance)
	}

	sinPhi := math32.Sin(phi)
	newOffset := mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}

	cam.Position = c.Target.Add(newOffset)
	cam.LookAt = c.Target
	return moved
}

// pan desloca alvo e câmera no plano da tela, proporcional à distância do alvo.
func (c *OrbitControls) pan(dx, dy, distance float32) {
	cam := c.camera
	forward := c.Target.Sub(cam.Position)
	if forward.Len() == 0 {
		forward = mgl32.Vec3{0, 0, -1}
	}
	forward = forward.Normalize()

	right := forward.Cross(cam.Up)
	if right.Len() == 0 {
		right = mgl32.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	// Altura visível no plano do alvo
	halfFov := mgl32.DegToRad(cam.Fovy) / 2
	visible := distance * math32.Tan(halfFov)
	scale := 2 * visible / c.viewportHeight * c.PanSpeed

	delta := right.Mul(-dx * scale).Add(up.Mul(dy * scale))
	c.Target = c.Target.Add(delta)
	cam.Position = cam.Position.Add(delta)
}
