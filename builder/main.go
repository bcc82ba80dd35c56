package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

// component descreve um executável do projeto.
type component struct {
	Name   string
	Dir    string // Pacote relativo à raiz do módulo
	Output string // Nome do binário, sem extensão
	Cgo    bool
	GUI    bool // Sem console no Windows
}

var components = []component{
	{Name: "VISUALIZADOR (CGO + Raylib)", Dir: "visualizador", Output: "visualizador", Cgo: true},
	{Name: "LAUNCHER (Pure Go)", Dir: "launcher", Output: "BlockVision", Cgo: false},
}

func main() {
	outDir := flag.String("out", "bin", "Diretório de saída")
	pause := flag.Bool("pause", runtime.GOOS == "windows", "Aguardar Enter ao terminar")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║      BlockVision Native Builder      ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	setupEnvironment()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fatal(err, *pause)
	}

	for i, c := range components {
		fmt.Printf(ColorYellow+"\n[%d/%d] "+ColorReset, i+1, len(components))
		if err := buildComponent(c, *outDir, runtime.GOOS); err != nil {
			fatal(err, *pause)
		}
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: Execute o '%s' para sortear uma demonstração."+ColorReset+"\n",
		binaryName(components[len(components)-1].Output, runtime.GOOS))

	if *pause {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

// binaryName acrescenta a extensão do sistema alvo.
func binaryName(base, goos string) string {
	if goos == "windows" {
		return base + ".exe"
	}
	return base
}

// ldflagsFor monta as flags de link de um componente.
func ldflagsFor(c component, goos string) string {
	flags := []string{"-s", "-w"}
	if goos == "windows" {
		if c.Cgo {
			flags = append([]string{"-extldflags=-static"}, flags...)
		}
		if c.GUI {
			flags = append(flags, "-H=windowsgui")
		}
	}
	return strings.Join(flags, " ")
}

// buildArgs monta a linha de comando do go build.
func buildArgs(c component, outDir, goos string) []string {
	output := filepath.Join(outDir, binaryName(c.Output, goos))
	return []string{"build", "-ldflags", ldflagsFor(c, goos), "-o", output, "./" + c.Dir}
}

func buildComponent(c component, outDir, goos string) error {
	fmt.Printf(ColorYellow+"Compilando %s..."+ColorReset+"\n", c.Name)

	cgoValue := "0"
	if c.Cgo {
		cgoValue = "1"
	}

	args := buildArgs(c, outDir, goos)
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(), "CGO_ENABLED="+cgoValue)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar %s: %v", c.Name, err)
	}

	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", c.Name, args[len(args)-2])
	return nil
}

func fatal(err error, pause bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if pause {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
