package render

import (
	"BlockVision/visualizador/internal/particles"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	rainColor = rl.NewColor(100, 150, 255, 150)
	snowColor = rl.NewColor(255, 255, 255, 200)
)

// DrawParticles desenha o sistema de partículas. Deve ser chamado dentro do modo 3D.
func DrawParticles(sys *particles.System) {
	if sys == nil || sys.Kind == particles.KindNone {
		return
	}

	for _, p := range sys.Particles {
		if !p.Active {
			continue
		}
		pos := Vec3ToRL(p.Position)
		if sys.Kind == particles.KindRain {
			rl.DrawLine3D(pos, rl.Vector3{X: pos.X, Y: pos.Y + 0.5, Z: pos.Z}, rainColor)
		} else {
			rl.DrawCube(pos, 0.1, 0.1, 0.1, snowColor)
		}
	}
}
