package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective é uma câmera de projeção em perspectiva.
// A projeção só é recalculada em UpdateProjectionMatrix, como no three.js.
type Perspective struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3 // Ponto para onde a câmera olha (mantido pelos controles)
	Up       mgl32.Vec3

	Fovy   float32 // Campo de visão vertical em graus
	Aspect float32
	Near   float32
	Far    float32

	Projection mgl32.Mat4
}

// NewPerspective cria uma nova câmera em perspectiva.
func NewPerspective(fovy, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Position: mgl32.Vec3{0, 0, 5},
		Up:       mgl32.Vec3{0, 1, 0},
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix recalcula a matriz de projeção a partir dos parâmetros atuais.
func (c *Perspective) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// View retorna a matriz de visualização (look-at).
// Se a câmera estiver exatamente sobre o alvo, olha na direção -Z.
func (c *Perspective) View() mgl32.Mat4 {
	target := c.LookAt
	if c.Position.Sub(target).Len() == 0 {
		target = c.Position.Sub(mgl32.Vec3{0, 0, 1})
	}
	return mgl32.LookAtV(c.Position, target, c.Up)
}
