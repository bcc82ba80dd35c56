package render

import rl "github.com/gen2brain/raylib-go/raylib"

// MouseInput lê o mouse da Raylib para os controles de órbita.
// Botão esquerdo orbita, botão direito arrasta e a rolagem aproxima.
type MouseInput struct{}

func (MouseInput) PointerDelta() (float32, float32) {
	d := rl.GetMouseDelta()
	return d.X, d.Y
}

func (MouseInput) RotateHeld() bool { return rl.IsMouseButtonDown(rl.MouseLeftButton) }

func (MouseInput) PanHeld() bool { return rl.IsMouseButtonDown(rl.MouseRightButton) }

func (MouseInput) Wheel() float32 { return rl.GetMouseWheelMove() }
