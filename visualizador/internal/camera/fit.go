package camera

import (
	"BlockVision/visualizador/internal/field"

	"github.com/go-gl/mathgl/mgl32"
)

// MinFar é a menor distância aceita para o plano de corte distante.
const MinFar float32 = 1.0

// PositionScale multiplica o maior canto do campo para posicionar a câmera.
const PositionScale float32 = 1.5

// FarScale multiplica a soma das extensões do campo para obter o plano distante.
const FarScale float32 = 20

// Fit enquadra o campo de blocos: o alvo dos controles vai para o centro dos
// limites e a câmera para 1.5x o maior canto, medido a partir da origem.
// É uma heurística: se Smallest estiver longe da origem o enquadramento pode
// não cobrir todos os blocos.
func Fit(b field.Bounds, cam *Perspective, ctl *OrbitControls) {
	cx, cy, cz := b.Center()
	target := mgl32.Vec3{cx, cy, cz}

	if ctl != nil {
		ctl.Target = target
	}
	if cam == nil {
		return
	}

	cam.Position = mgl32.Vec3{
		float32(b.Largest.X) * PositionScale,
		float32(b.Largest.Y) * PositionScale,
		float32(b.Largest.Z) * PositionScale,
	}
	cam.LookAt = target

	sx, sy, sz := b.Span()
	far := float32(sx+sy+sz) * FarScale
	if far < MinFar {
		far = MinFar
	}
	cam.Far = far
}
