package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"BlockVision/shared/config"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	configFile := flag.String("config", "", "Arquivo de configuração (.json, .yaml)")
	seed := flag.Int64("seed", 0, "Semente do sorteio (0 = relógio)")
	flag.Parse()

	p := message.NewPrinter(language.BrazilianPortuguese)
	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║        BlockVision Launcher          ║")
	fmt.Println("╚══════════════════════════════════════╝")

	cfg := config.Load()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			log.Fatalf("[Launcher] Erro ao carregar %s: %v", *configFile, err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	demo, err := Pick(cfg.Demos, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("[Launcher] %v", err)
	}
	p.Printf("[Launcher] Sorteada: %s (%d opções)\n", demo, len(cfg.Demos))
	fmt.Printf("[Launcher] Semente: %d\n", *seed)

	viewer, err := viewerPath()
	if err != nil {
		log.Fatalf("[Launcher] Erro ao resolver caminho do visualizador: %v", err)
	}

	args := []string{"-demo", demo}
	if *configFile != "" {
		args = append(args, "-config", *configFile)
	}
	cmd := exec.Command(viewer, args...)
	cmd.Dir = filepath.Dir(viewer)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("ERRO: o visualizador terminou com falha (%s)\n", viewer)
		fmt.Printf("Detalhes: %v\n", err)
		os.Exit(1)
	}
}

// viewerPath procura o executável do visualizador ao lado do launcher.
func viewerPath() (string, error) {
	name := "visualizador"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Abs(name)
	}
	return filepath.Join(filepath.Dir(exe), name), nil
}
