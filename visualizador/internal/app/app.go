package app

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"BlockVision/shared/config"
	"BlockVision/shared/util"
	"BlockVision/visualizador/internal/camera"
	"BlockVision/visualizador/internal/field"
	"BlockVision/visualizador/internal/particles"
	"BlockVision/visualizador/internal/render"
	"BlockVision/visualizador/internal/scene"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrUnknownDemo indica um nome de demonstração não registrado.
var ErrUnknownDemo = errors.New("demonstração desconhecida")

const (
	DemoBlocks    = "blocos"
	DemoParticles = "particulas"
)

// App é a aplicação principal do visualizador.
type App struct {
	Config *config.Config

	host     *render.WindowHost
	renderer *render.Renderer
	session  *scene.Session

	material *scene.Material
	weather  *particles.System

	blockCount int
	seed       int64
	demo       string

	frameTimes *util.History[float32] // Milissegundos por quadro
	printer    *message.Printer
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		Config:     cfg,
		host:       render.NewWindowHost(),
		frameTimes: util.NewHistory[float32](120),
		printer:    message.NewPrinter(language.BrazilianPortuguese),
	}
}

// Run executa a demonstração indicada até a janela ser fechada.
// Erros de entrada são detectados antes de abrir a janela.
func (a *App) Run(demo string) error {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	if demo == "" {
		demo = a.Config.DefaultDemo
	}
	a.demo = demo

	var rng *rand.Rand
	rng, a.seed = field.NewRand(a.Config.Seed)
	log.Printf("[App] Demonstração %q com semente %d", demo, a.seed)

	switch demo {
	case DemoBlocks:
		blocks, err := field.Generate(rng, a.Config.BlockCount, a.Config.MaxX, a.Config.MaxY, a.Config.MaxZ)
		if err != nil {
			return fmt.Errorf("gerando blocos: %w", err)
		}
		a.openWindow()
		defer a.shutdown()
		return a.runBlocks(blocks)

	case DemoParticles:
		kind, err := particles.ParseKind(a.Config.ParticleKind)
		if err != nil {
			return err
		}
		a.openWindow()
		defer a.shutdown()
		return a.runParticles(rng, kind)
	}

	return fmt.Errorf("%w: %q", ErrUnknownDemo, demo)
}

func (a *App) openWindow() {
	a.host.Open(render.WindowOptions{
		Width:      a.Config.WindowWidth,
		Height:     a.Config.WindowHeight,
		Title:      a.Config.WindowTitle,
		Fullscreen: a.Config.Fullscreen,
		TargetFPS:  a.Config.TargetFPS,
	})
	a.host.BeforeFrame = a.beforeFrame

	log.Printf("[App] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)
}

// newSession monta renderizador, câmera e controles a partir da configuração.
func (a *App) newSession() *scene.Session {
	cfg := a.Config
	bg := cfg.Background.Color()

	a.renderer = render.NewRenderer()
	a.renderer.ShowGrid = cfg.ShowGrid
	a.renderer.Overlay = a.drawHUD

	w, h := a.host.Size()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	cam := camera.NewPerspective(cfg.FOV, aspect, cfg.NearPlane, cfg.FarPlane)

	ctl := camera.NewOrbitControls(cam, render.MouseInput{})
	ctl.ZoomSpeed = cfg.ZoomSpeed
	ctl.RotateSpeed = cfg.RotateSpeed
	ctl.PanSpeed = cfg.PanSpeed

	return scene.NewSession(scene.New(bg), a.renderer, a.host, cam, ctl)
}

// start ajusta o viewport ao tamanho da janela e inicia o loop.
func (a *App) start(s *scene.Session) {
	a.session = s
	s.Resize(a.host.Size())
	a.host.OnResize(s.Resize)
	s.Start()
	a.host.Run()
}

func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")
	if a.renderer != nil {
		a.renderer.Unload()
	}
	a.host.Close()
}
