package app

import (
	"fmt"
	"log"
	"math/rand"

	"BlockVision/visualizador/internal/field"
	"BlockVision/visualizador/internal/particles"
	"BlockVision/visualizador/internal/render"
	"BlockVision/visualizador/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// runBlocks mostra o campo de blocos aleatórios enquadrado pela câmera.
func (a *App) runBlocks(blocks []field.Block) error {
	s := a.newSession()

	a.material = &scene.Material{
		Color:     a.Config.BlockColor.Color(),
		Wireframe: a.Config.WireframeMode,
	}
	if _, err := s.Build(blocks, a.material); err != nil {
		return fmt.Errorf("montando cena: %w", err)
	}
	a.blockCount = len(blocks)

	a.start(s)
	return nil
}

// runParticles mostra chuva ou neve caindo em volta do alvo da câmera.
func (a *App) runParticles(rng *rand.Rand, kind particles.Kind) error {
	s := a.newSession()

	s.Controls.Target = mgl32.Vec3{0, 20, 0}
	s.Camera.Position = mgl32.Vec3{0, 30, 60}
	s.Camera.LookAt = s.Controls.Target

	a.weather = particles.NewSystem(a.Config.ParticleCount, kind, rng)
	a.renderer.Extra = func() {
		a.weather.Update(rl.GetFrameTime(), s.Controls.Target)
		render.DrawParticles(a.weather)
	}
	log.Printf("[App] %d partículas de %s", a.weather.Len(), kind)

	a.start(s)
	return nil
}
