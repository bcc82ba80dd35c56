package render

import (
	"image/color"

	"BlockVision/visualizador/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec3ToRL converte um mgl32.Vec3 para rl.Vector3.
func Vec3ToRL(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// MatToRL converte uma matriz mgl32 para o formato da Raylib.
// Ambas armazenam em column-major, então a ordem dos elementos é a mesma.
func MatToRL(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// ColorToRL converte uma cor RGBA da stdlib para rl.Color.
func ColorToRL(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// CameraToRL monta a rl.Camera3D equivalente à câmera em perspectiva.
func CameraToRL(cam *camera.Perspective) rl.Camera3D {
	target := cam.LookAt
	if cam.Position.Sub(target).Len() == 0 {
		// Raylib gera NaN quando posição e alvo coincidem
		target = cam.Position.Sub(mgl32.Vec3{0, 0, 1})
	}
	return rl.Camera3D{
		Position:   Vec3ToRL(cam.Position),
		Target:     Vec3ToRL(target),
		Up:         Vec3ToRL(cam.Up),
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}
