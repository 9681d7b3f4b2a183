package service

import (
	"time"

	"goalcheer/internal/modules/celebration/domain"
	celebrationout "goalcheer/internal/modules/celebration/port/out"
)

// ParticleSystem owns one batch of confetti for a single celebration.
type ParticleSystem struct {
	particles []domain.Particle
	phase     domain.Phase
	started   bool
	origin    time.Time
	fadeStart time.Time
}

func NewParticleSystem(particles []domain.Particle) *ParticleSystem {
	return &ParticleSystem{particles: particles, phase: domain.Falling}
}

func (s *ParticleSystem) Particles() []domain.Particle { return s.particles }

func (s *ParticleSystem) Phase() domain.Phase { return s.phase }

// Frame advances the animation to now and draws it. The first call fixes the
// time origin. cv may be nil, in which case only the simulation advances.
func (s *ParticleSystem) Frame(now time.Time, cv celebrationout.Canvas) domain.Phase {
	if !s.started {
		s.started = true
		s.origin = now
	}
	switch s.phase {
	case domain.Falling:
		for i := range s.particles {
			s.particles[i].Step()
		}
		s.draw(cv, 1)
		if now.Sub(s.origin) >= domain.FallDuration {
			s.phase = domain.Fading
			s.fadeStart = now
		}
	case domain.Fading:
		alpha := domain.FadeAlpha(now.Sub(s.fadeStart))
		s.draw(cv, alpha)
		if alpha <= 0 {
			s.phase = domain.Done
		}
	}
	return s.phase
}

func (s *ParticleSystem) draw(cv celebrationout.Canvas, alpha float64) {
	if cv == nil {
		return
	}
	// Size is read every frame: a resize may land between two frames.
	cv.ClearRect(0, 0, float64(cv.Width()), float64(cv.Height()))
	if alpha < 1 {
		cv.SetGlobalAlpha(alpha)
		defer cv.SetGlobalAlpha(1)
	}
	for _, p := range s.particles {
		cv.Save()
		cv.Translate(p.X, p.Y)
		cv.Rotate(p.Angle)
		cv.SetFillStyle(p.Color)
		cv.FillRect(-p.Radius/2, -p.Radius/2, p.Radius, p.Radius*0.6)
		cv.Restore()
	}
}
