package app

import (
	"log"

	"BlockVision/visualizador/internal/particles"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// beforeFrame registra o tempo do quadro anterior e trata o teclado.
func (a *App) beforeFrame() {
	a.frameTimes.Push(rl.GetFrameTime() * 1000)
	a.handleKeys()
}

// handleKeys processa os atalhos de teclado antes de cada quadro.
func (a *App) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	if rl.IsKeyPressed(rl.KeyF4) {
		a.Config.WireframeMode = !a.Config.WireframeMode
		if a.material != nil {
			a.material.Wireframe = a.Config.WireframeMode
		}
		log.Printf("[App] Wireframe: %v", a.Config.WireframeMode)
	}

	if rl.IsKeyPressed(rl.KeyG) && a.renderer != nil {
		a.renderer.ShowGrid = !a.renderer.ShowGrid
	}

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Alterna entre chuva e neve na demonstração de partículas
	if rl.IsKeyPressed(rl.KeyP) && a.weather != nil && a.session != nil {
		next := particles.KindSnow
		if a.weather.Kind == particles.KindSnow {
			next = particles.KindRain
		}
		a.weather.SetKind(next, a.session.Controls.Target)
	}
}
