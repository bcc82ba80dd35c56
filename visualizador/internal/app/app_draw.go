package app

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHUD desenha o painel de debug (F3).
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo || a.session == nil {
		return
	}

	p := a.printer
	cam := a.session.Camera
	lines := []string{
		p.Sprintf("FPS: %d", rl.GetFPS()),
		p.Sprintf("Quadro: %.2f ms (pico %.2f ms)", a.frameTimes.Average(), a.frameTimes.Peak()),
		p.Sprintf("Demo: %s (semente %s)", a.demo, strconv.FormatInt(a.seed, 10)),
		p.Sprintf("Quadros: %d", a.session.Frames()),
	}

	if a.weather != nil {
		lines = append(lines, p.Sprintf("Partículas: %d (%s)", a.weather.Len(), a.weather.Kind))
	} else {
		b := a.session.Bounds()
		lines = append(lines,
			p.Sprintf("Blocos: %d", a.blockCount),
			p.Sprintf("Triângulos: %d", a.renderer.DrawnTriangles),
			p.Sprintf("Limites: %v a %v", b.Smallest, b.Largest),
		)
	}

	lines = append(lines,
		p.Sprintf("Câmera: (%.1f, %.1f, %.1f)", cam.Position.X(), cam.Position.Y(), cam.Position.Z()),
		p.Sprintf("Far: %.1f", cam.Far),
	)

	const lineHeight = 20
	rl.DrawRectangle(5, 5, 360, int32(len(lines)*lineHeight+10), rl.NewColor(0, 0, 0, 160))
	for i, line := range lines {
		rl.DrawText(line, 12, int32(10+i*lineHeight), 18, rl.RayWhite)
	}
	rl.DrawText("F3 HUD | F4 Aramado | G Grade | F11 Tela cheia", 12, int32(rl.GetScreenHeight())-24, 16, rl.LightGray)
}
