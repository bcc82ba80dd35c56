package render

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WindowOptions descreve a janela a ser aberta.
type WindowOptions struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
}

// WindowHost é o ambiente de execução: janela, agendamento de quadros e
// notificação de redimensionamento. Um quadro só roda se tiver sido pedido
// via RequestFrame durante o quadro anterior.
type WindowHost struct {
	next     func()
	onResize func(width, height int32)

	// BeforeFrame roda antes de cada quadro agendado (atalhos de teclado, etc).
	BeforeFrame func()
}

// NewWindowHost cria um host ainda sem janela.
func NewWindowHost() *WindowHost {
	return &WindowHost{}
}

// Open inicializa a janela da Raylib.
func (h *WindowHost) Open(opts WindowOptions) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if opts.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(opts.TargetFPS)

	log.Printf("[Host] Janela inicializada: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
}

// RequestFrame agenda fn para o próximo quadro.
func (h *WindowHost) RequestFrame(fn func()) {
	h.next = fn
}

// OnResize registra o callback chamado quando a janela muda de tamanho.
func (h *WindowHost) OnResize(fn func(width, height int32)) {
	h.onResize = fn
}

// Size retorna o tamanho atual da área de desenho.
func (h *WindowHost) Size() (int32, int32) {
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
}

// Run executa os quadros agendados até a janela ser fechada ou nenhum
// quadro ser pedido.
func (h *WindowHost) Run() {
	for !rl.WindowShouldClose() {
		fn := h.next
		if fn == nil {
			log.Println("[Host] Nenhum quadro agendado, encerrando loop")
			return
		}
		h.next = nil

		if rl.IsWindowResized() && h.onResize != nil {
			h.onResize(h.Size())
		}
		if h.BeforeFrame != nil {
			h.BeforeFrame()
		}

		rl.BeginDrawing()
		fn()
		rl.EndDrawing()
	}
}

// Close fecha a janela.
func (h *WindowHost) Close() {
	rl.CloseWindow()
}
