package service

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"goalcheer/internal/modules/celebration/domain"
	celebrationout "goalcheer/internal/modules/celebration/port/out"
	"goalcheer/internal/platform/random"
)

// Controller is the overlay state machine. Every resource of a celebration
// hangs off a run created by Start and released by Stop; callbacks capture
// their run and do nothing once it is no longer current.
type Controller struct {
	sched    celebrationout.Scheduler
	surface  celebrationout.Surface
	overlay  celebrationout.Overlay
	hearts   celebrationout.HeartContainer
	viewport celebrationout.Viewport
	rng      random.Source
	log      hclog.Logger

	state domain.State
	run   *run
}

type run struct {
	particles  *ParticleSystem
	spawner    *HeartSpawner
	stopResize func()
	frames     int
	skipLogged bool
}

func NewController(
	sched celebrationout.Scheduler,
	surface celebrationout.Surface,
	overlay celebrationout.Overlay,
	hearts celebrationout.HeartContainer,
	viewport celebrationout.Viewport,
	rng random.Source,
	log hclog.Logger,
) *Controller {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Controller{
		sched:    sched,
		surface:  surface,
		overlay:  overlay,
		hearts:   hearts,
		viewport: viewport,
		rng:      rng,
		log:      log,
		state:    domain.Idle,
	}
}

func (c *Controller) State() domain.State { return c.state }

// Phase reports the particle phase of the current run, or Done when idle.
func (c *Controller) Phase() domain.Phase {
	if c.run == nil {
		return domain.Done
	}
	return c.run.particles.Phase()
}

// Particles exposes the live batch; nil when idle.
func (c *Controller) Particles() []domain.Particle {
	if c.run == nil {
		return nil
	}
	return c.run.particles.Particles()
}

// Frames counts frames drawn by the current run.
func (c *Controller) Frames() int {
	if c.run == nil {
		return 0
	}
	return c.run.frames
}

func (c *Controller) OverlayVisible() bool { return c.overlay.Visible() }

func (c *Controller) HeartCount() int { return c.hearts.Len() }

// Start begins a celebration. While one is already running it only
// re-shows the overlay.
func (c *Controller) Start() {
	c.overlay.Show()
	if c.state == domain.Celebrating {
		c.log.Debug("celebration already running")
		return
	}

	width, height := c.viewport.Size()
	c.surface.Resize(width, height)

	r := &run{
		particles: NewParticleSystem(domain.NewBatch(c.rng, width, height)),
		spawner:   NewHeartSpawner(c.sched, c.hearts, c.rng),
	}
	r.stopResize = c.viewport.OnResize(func(w, h int) {
		if c.run != r {
			return
		}
		c.surface.Resize(w, h)
	})
	c.run = r
	c.state = domain.Celebrating

	c.sched.RequestFrame(c.frame(r))
	r.spawner.Schedule()
	c.log.Debug("celebration started", "width", width, "height", height, "particles", len(r.particles.Particles()))
}

// Stop ends the celebration. Calling it while idle repeats the same
// teardown and is harmless.
func (c *Controller) Stop() {
	c.overlay.Hide()
	if cv, err := c.surface.Context(); err == nil {
		cv.ClearRect(0, 0, float64(cv.Width()), float64(cv.Height()))
	}
	c.hearts.Clear()

	if c.run != nil {
		if c.run.stopResize != nil {
			c.run.stopResize()
		}
		c.log.Debug("celebration stopped", "frames", c.run.frames, "phase", c.run.particles.Phase().String(), "hearts", c.run.spawner.Spawned())
	}
	c.run = nil
	c.state = domain.Idle
}

func (c *Controller) frame(r *run) celebrationout.FrameFunc {
	return func(now time.Time) {
		if c.state != domain.Celebrating || c.run != r {
			return
		}
		r.frames++

		var cv celebrationout.Canvas
		if ctx, err := c.surface.Context(); err == nil {
			cv = ctx
		} else if !r.skipLogged {
			r.skipLogged = true
			c.log.Debug("skipping particle rendering", "error", err)
		}

		if r.particles.Frame(now, cv) == domain.Done {
			c.Stop()
			return
		}
		c.sched.RequestFrame(c.frame(r))
	}
}
