package domain_test

import (
	"math"
	"testing"

	"goalcheer/internal/modules/celebration/domain"
)

type seqRandom struct {
	values []float64
	idx    int
}

func (s *seqRandom) Float64() float64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func TestSpawnCountScalesWithWidthAndCaps(t *testing.T) {
	t.Parallel()
	cases := []struct {
		width int
		want  int
	}{
		{width: 0, want: 0},
		{width: 1, want: 18},
		{width: 200, want: 18},
		{width: 201, want: 36},
		{width: 1200, want: 108},
		{width: 1201, want: 110},
		{width: 2000, want: 110},
	}
	for _, tc := range cases {
		if got := domain.SpawnCount(tc.width); got != tc.want {
			t.Fatalf("width %d: expected %d particles, got %d", tc.width, tc.want, got)
		}
	}
}

func TestNewParticleConsumesRandomInOrder(t *testing.T) {
	t.Parallel()
	rng := &seqRandom{values: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}}
	p := domain.NewParticle(rng, 800, 600)
	if p.X != 400 || p.Y != -180 {
		t.Fatalf("unexpected position %.2f,%.2f", p.X, p.Y)
	}
	if p.Radius != 10 || p.VX != 0 || p.VY != 3 {
		t.Fatalf("unexpected radius/velocity: %+v", p)
	}
	if p.Color != domain.Palette[2] {
		t.Fatalf("expected palette[2], got %s", p.Color)
	}
	if math.Abs(p.Angle-math.Pi) > 1e-12 || p.Spin != 0 {
		t.Fatalf("unexpected rotation: angle=%f spin=%f", p.Angle, p.Spin)
	}
	if rng.idx != 8 {
		t.Fatalf("expected 8 draws per particle, got %d", rng.idx)
	}
}

func TestNewParticleRanges(t *testing.T) {
	t.Parallel()
	low := domain.NewParticle(&seqRandom{values: []float64{0}}, 800, 600)
	high := domain.NewParticle(&seqRandom{values: []float64{0.999999}}, 800, 600)
	if low.Radius != 6 || high.Radius < 13.99 || high.Radius >= 14 {
		t.Fatalf("radius outside 6..14: %f %f", low.Radius, high.Radius)
	}
	if low.Color != domain.Palette[0] || high.Color != domain.Palette[4] {
		t.Fatalf("unexpected colours %s %s", low.Color, high.Color)
	}
	if high.Y > 0 || high.Y < -360 {
		t.Fatalf("spawn y must lie within 60%% of the height above the top, got %f", high.Y)
	}
}

func TestStepAddsGravityEveryFrame(t *testing.T) {
	t.Parallel()
	p := domain.Particle{X: 10, Y: 20, VX: 1, VY: 2, Angle: 0, Spin: 0.1}
	const frames = 120
	for i := 0; i < frames; i++ {
		prev := p.VY
		p.Step()
		if p.VY <= prev {
			t.Fatalf("frame %d: vertical velocity must increase", i)
		}
	}
	if math.Abs(p.VY-(2+frames*domain.Gravity)) > 1e-9 {
		t.Fatalf("expected vy %.4f, got %.4f", 2+frames*domain.Gravity, p.VY)
	}
	if math.Abs(p.Angle-frames*0.1) > 1e-9 || p.X != 10+frames {
		t.Fatalf("unexpected angle/x after %d frames: %+v", frames, p)
	}
}

func TestNewBatchMatchesSpawnCount(t *testing.T) {
	t.Parallel()
	batch := domain.NewBatch(&seqRandom{values: []float64{0.1, 0.7, 0.3}}, 400, 300)
	if len(batch) != 36 {
		t.Fatalf("expected 36 particles, got %d", len(batch))
	}
}
