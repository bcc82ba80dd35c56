// Package particles simula partículas de clima (chuva e neve) em volta de um ponto.
package particles

import (
	"fmt"
	"strings"

	"BlockVision/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

type Kind int

const (
	KindNone Kind = iota
	KindRain
	KindSnow
)

func (k Kind) String() string {
	switch k {
	case KindRain:
		return "chuva"
	case KindSnow:
		return "neve"
	default:
		return "nenhum"
	}
}

// ParseKind converte o nome usado na configuração.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nenhum", "none":
		return KindNone, nil
	case "chuva", "rain":
		return KindRain, nil
	case "neve", "snow":
		return KindSnow, nil
	}
	return KindNone, fmt.Errorf("tipo de partícula desconhecido: %q", s)
}

// Área onde as partículas nascem, relativa ao centro.
const (
	SpawnHalfWidth = 100
	SpawnMinHeight = 20
	SpawnHeight    = 50
	// Abaixo desta altura a partícula renasce
	Floor = -10
)

// Source fornece números aleatórios em [0, 1).
type Source interface {
	Float32() float32
}

type Particle struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Alpha    float32
	Active   bool
}

type System struct {
	Particles []Particle
	Kind      Kind

	rng Source
}

// NewSystem cria um sistema com max partículas já posicionadas.
func NewSystem(max int, kind Kind, rng Source) *System {
	if max < 0 {
		max = 0
	}
	s := &System{
		Particles: make([]Particle, max),
		Kind:      kind,
		rng:       rng,
	}
	for i := range s.Particles {
		s.respawn(i, mgl32.Vec3{})
	}
	return s
}

// SetKind troca o tipo e reposiciona todas as partículas.
func (s *System) SetKind(kind Kind, center mgl32.Vec3) {
	s.Kind = kind
	for i := range s.Particles {
		s.respawn(i, center)
	}
}

func (s *System) respawn(i int, center mgl32.Vec3) {
	r := s.rng.Float32
	p := &s.Particles[i]
	p.Position = mgl32.Vec3{
		center.X() + r()*2*SpawnHalfWidth - SpawnHalfWidth,
		r()*SpawnHeight + SpawnMinHeight,
		center.Z() + r()*2*SpawnHalfWidth - SpawnHalfWidth,
	}
	if s.Kind == KindRain {
		p.Velocity = mgl32.Vec3{0, -20 - r()*10, 0}
	} else {
		p.Velocity = mgl32.Vec3{r()*2 - 1, -2 - r()*2, r()*2 - 1}
	}
	p.Alpha = 1.0
	p.Active = true
}

// Update avança a simulação em dt segundos. Partículas que passam do chão
// renascem em volta de center.
func (s *System) Update(dt float32, center mgl32.Vec3) {
	if s.Kind == KindNone {
		return
	}
	for i := range s.Particles {
		p := &s.Particles[i]
		if !p.Active {
			continue
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		if p.Position.Y() < Floor || outside(p.Position, center) {
			s.respawn(i, center)
		}
	}
}

// outside indica se a partícula se afastou demais do centro no plano horizontal.
func outside(pos, center mgl32.Vec3) bool {
	const limit = 2 * SpawnHalfWidth
	flat := mgl32.Vec3{pos.X(), 0, pos.Z()}
	return util.DistSq(flat, mgl32.Vec3{center.X(), 0, center.Z()}) > limit*limit
}

// Len retorna a quantidade de partículas.
func (s *System) Len() int {
	return len(s.Particles)
}
