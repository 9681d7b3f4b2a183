package domain

import (
	"math"

	"goalcheer/internal/platform/random"
)

const (
	// Gravity is added to every particle's vertical velocity once per frame.
	Gravity = 0.03

	MaxParticles     = 110
	ParticlesPerBand = 18
	BandWidth        = 200.0

	minRadius   = 6.0
	radiusRange = 8.0
	// spawnDepth is how far above the top edge particles may start, as a
	// fraction of the surface height.
	spawnDepth = 0.6
)

// Palette holds the confetti colours.
var Palette = [5]string{"#ff6b83", "#ffb6d9", "#8de0a6", "#ffd166", "#ffd4ec"}

// Particle is one confetti piece. Units are pixels and pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  string
	Angle  float64
	Spin   float64
}

// SpawnCount scales with viewport width and is capped at MaxParticles.
func SpawnCount(viewportWidth int) int {
	if viewportWidth <= 0 {
		return 0
	}
	bands := int(math.Ceil(float64(viewportWidth) / BandWidth))
	return min(MaxParticles, ParticlesPerBand*bands)
}

// NewParticle places a particle somewhere across the width, above the top edge.
func NewParticle(rng random.Source, width, height float64) Particle {
	return Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * -height * spawnDepth,
		Radius: minRadius + rng.Float64()*radiusRange,
		VX:     -2 + rng.Float64()*4,
		VY:     1 + rng.Float64()*4,
		Color:  Palette[pick(rng, len(Palette))],
		Angle:  rng.Float64() * math.Pi * 2,
		Spin:   (rng.Float64() - 0.5) * 0.2,
	}
}

func NewBatch(rng random.Source, width, height int) []Particle {
	n := SpawnCount(width)
	batch := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, NewParticle(rng, float64(width), float64(height)))
	}
	return batch
}

// Step advances the particle by one frame.
func (p *Particle) Step() {
	p.X += p.VX
	p.Y += p.VY
	p.VY += Gravity
	p.Angle += p.Spin
}

// pick maps a uniform draw onto [0, n). A source returning exactly 1 would
// overflow, so it is clamped.
func pick(rng random.Source, n int) int {
	i := int(math.Floor(rng.Float64() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
