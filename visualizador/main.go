package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"BlockVision/shared/config"
	"BlockVision/visualizador/internal/app"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configFile := flag.String("config", "", "Arquivo de configuração (.json, .yaml)")
	demo := flag.String("demo", "", "Demonstração a executar (blocos, particulas)")
	count := flag.Int("count", -1, "Quantidade de blocos")
	maxX := flag.Int("max-x", 0, "Limite do eixo X")
	maxY := flag.Int("max-y", 0, "Limite do eixo Y")
	maxZ := flag.Int("max-z", 0, "Limite do eixo Z")
	seed := flag.Int64("seed", 0, "Semente aleatória (0 = relógio)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	// Configurar Log em Arquivo
	f, err := os.OpenFile("debug_bv.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- INICIANDO BLOCK VISION ---")
	}
	log.SetFlags(log.Ltime | log.Lshortfile)

	// Carregar configurações
	cfg := config.Load()
	if *configFile != "" {
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("[Config] Erro ao carregar %s: %v", *configFile, err)
		}
	}

	// Aplicar flags de linha de comando (sobrescrevem o arquivo)
	if *count >= 0 {
		cfg.BlockCount = *count
	}
	if *maxX != 0 {
		cfg.MaxX = *maxX
	}
	if *maxY != 0 {
		cfg.MaxY = *maxY
	}
	if *maxZ != 0 {
		cfg.MaxZ = *maxZ
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	// Criar e rodar a aplicação
	if err := app.New(cfg).Run(*demo); err != nil {
		log.Printf("[App] Erro: %v", err)
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}
