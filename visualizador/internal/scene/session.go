package scene

import (
	"image/color"
	"log"

	"BlockVision/visualizador/internal/camera"
	"BlockVision/visualizador/internal/field"
)

// Renderer é o colaborador que limpa o framebuffer e desenha a cena.
type Renderer interface {
	Clear(background color.RGBA)
	Render(sc *Scene, cam *camera.Perspective)
	SetSize(width, height int32)
}

// Host agenda o próximo quadro (equivalente ao requestAnimationFrame).
type Host interface {
	RequestFrame(tick func())
}

// Session reúne cena, câmera, controles e renderizador de uma visualização.
// Todo o estado que antes era global fica aqui; várias sessões podem coexistir.
type Session struct {
	Scene    *Scene
	Camera   *camera.Perspective
	Controls *camera.OrbitControls

	renderer Renderer
	host     Host

	bounds  field.Bounds
	built   bool
	started bool
	frames  uint64
}

// Câmera usada quando NewSession recebe nil.
const (
	DefaultFovy = 75
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// NewSession cria uma nova sessão. Cena, câmera e controles nulos são
// substituídos por padrões: fundo preto, perspectiva de 75° e órbita sem entrada.
func NewSession(sc *Scene, r Renderer, h Host, cam *camera.Perspective, ctl *camera.OrbitControls) *Session {
	if sc == nil {
		sc = New(color.RGBA{A: 255})
	}
	if cam == nil {
		cam = camera.NewPerspective(DefaultFovy, 1, DefaultNear, DefaultFar)
	}
	if ctl == nil {
		ctl = camera.NewOrbitControls(cam, nil)
	}
	return &Session{
		Scene:    sc,
		Camera:   cam,
		Controls: ctl,
		renderer: r,
		host:     h,
	}
}

// Build adiciona o campo de blocos à cena e enquadra a câmera uma única vez.
// Chamadas seguintes não recalculam câmera nem alvo.
func (s *Session) Build(blocks []field.Block, mat *Material) (field.Bounds, error) {
	if s.built {
		return s.bounds, nil
	}

	bounds, err := Attach(s.Scene, blocks, mat)
	if err != nil {
		return field.Bounds{}, err
	}

	camera.Fit(bounds, s.Camera, s.Controls)
	s.bounds = bounds
	s.built = true

	log.Printf("[Cena] %d blocos anexados. Limites: %s -> %s | Câmera: %v | Far: %.1f",
		len(blocks), bounds.Smallest, bounds.Largest, s.Camera.Position, s.Camera.Far)
	return bounds, nil
}

// Bounds retorna os limites calculados em Build.
func (s *Session) Bounds() field.Bounds {
	return s.bounds
}

// Start agenda o primeiro quadro. Chamadas repetidas são ignoradas.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.host.RequestFrame(s.tick)
}

// Frames retorna quantos quadros já foram executados.
func (s *Session) Frames() uint64 {
	return s.frames
}

// tick executa um quadro: agenda o próximo, atualiza projeção e controles,
// limpa o framebuffer e desenha a cena.
func (s *Session) tick() {
	s.host.RequestFrame(s.tick)

	s.Camera.UpdateProjectionMatrix()
	s.Controls.Update()
	s.renderer.Clear(s.Scene.Background)
	s.renderer.Render(s.Scene, s.Camera)
	s.frames++
}

// Resize propaga um novo tamanho de janela para câmera, controles e renderizador.
// Tamanhos não positivos (janela minimizada) são ignorados.
func (s *Session) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}

	s.Camera.Aspect = float32(width) / float32(height)
	s.Camera.UpdateProjectionMatrix()
	s.Controls.SetViewport(width, height)
	s.renderer.SetSize(width, height)
}
