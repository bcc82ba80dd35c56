package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indica que a configuração não passou na validação do schema.
var ErrInvalidConfig = errors.New("configuração inválida")

// RGBA é uma cor gravada como [r, g, b, a].
type RGBA [4]uint8

// Color converte para color.RGBA.
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Config armazena as configurações do BlockVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" yaml:"window_width"`
	WindowHeight int32  `json:"window_height" yaml:"window_height"`
	WindowTitle  string `json:"window_title" yaml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" yaml:"target_fps"`

	// Campo de blocos
	BlockCount int   `json:"block_count" yaml:"block_count"`
	MaxX       int   `json:"max_x" yaml:"max_x"`
	MaxY       int   `json:"max_y" yaml:"max_y"`
	MaxZ       int   `json:"max_z" yaml:"max_z"`
	Seed       int64 `json:"seed" yaml:"seed"` // 0 = semente baseada no relógio

	// Câmera
	FOV         float32 `json:"fov" yaml:"fov"`
	NearPlane   float32 `json:"near_plane" yaml:"near_plane"`
	FarPlane    float32 `json:"far_plane" yaml:"far_plane"` // Antes do enquadramento
	ZoomSpeed   float32 `json:"zoom_speed" yaml:"zoom_speed"`
	RotateSpeed float32 `json:"rotate_speed" yaml:"rotate_speed"`
	PanSpeed    float32 `json:"pan_speed" yaml:"pan_speed"`

	// Cores
	Background RGBA `json:"background" yaml:"background"`
	BlockColor RGBA `json:"block_color" yaml:"block_color"`

	// Partículas
	ParticleCount int    `json:"particle_count" yaml:"particle_count"`
	ParticleKind  string `json:"particle_kind" yaml:"particle_kind"`

	// Demos disponíveis para o launcher
	Demos       []string `json:"demos" yaml:"demos"`
	DefaultDemo string   `json:"default_demo" yaml:"default_demo"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info" yaml:"show_debug_info"`
	ShowGrid      bool `json:"show_grid" yaml:"show_grid"`
	WireframeMode bool `json:"wireframe_mode" yaml:"wireframe_mode"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "BlockVision",
		Fullscreen:   false,
		TargetFPS:    60,

		BlockCount: 10000,
		MaxX:       1000,
		MaxY:       1000,
		MaxZ:       1000,
		Seed:       0,

		FOV:         75.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
		ZoomSpeed:   2.0,
		RotateSpeed: 1.0,
		PanSpeed:    1.0,

		Background: RGBA{0, 0, 0, 255},
		BlockColor: RGBA{255, 255, 255, 255},

		ParticleCount: 2000,
		ParticleKind:  "neve",

		Demos:       []string{"blocos", "particulas"},
		DefaultDemo: "blocos",

		ShowDebugInfo: false,
		ShowGrid:      false,
		WireframeMode: false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do config.json ao lado do executável.
// Se o arquivo não existir ou for inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFile(configPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] Usando configuração padrão: %v", err)
		}
		return DefaultConfig()
	}
	return cfg
}

// LoadFile carrega um arquivo JSON ou YAML (pela extensão). Campos ausentes
// mantêm o valor padrão.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	log.Printf("[Config] Configuração carregada de %s", path)
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Save salva as configurações no config.json ao lado do executável.
func (c *Config) Save() error {
	return c.SaveFile(configPath())
}

// SaveFile salva em JSON ou YAML conforme a extensão.
func (c *Config) SaveFile(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
