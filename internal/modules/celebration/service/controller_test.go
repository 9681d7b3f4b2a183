package service_test

import (
	"math"
	"testing"
	"time"

	celebrationout "goalcheer/internal/modules/celebration/adapter/out"
	"goalcheer/internal/modules/celebration/domain"
	celebrationport "goalcheer/internal/modules/celebration/port/out"
	"goalcheer/internal/modules/celebration/service"
	apperrors "goalcheer/internal/platform/errors"
)

const frameInterval = 20 * time.Millisecond

var epoch = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

type seqRandom struct {
	values []float64
	idx    int
}

func (s *seqRandom) Float64() float64 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

type recordingCanvas struct {
	width, height int
	ops           []string
	alphas        []float64
}

func (c *recordingCanvas) Width() int  { return c.width }
func (c *recordingCanvas) Height() int { return c.height }
func (c *recordingCanvas) ClearRect(_, _, _, _ float64) {
	c.ops = append(c.ops, "clear")
}
func (c *recordingCanvas) Save()                  { c.ops = append(c.ops, "save") }
func (c *recordingCanvas) Restore()               { c.ops = append(c.ops, "restore") }
func (c *recordingCanvas) Translate(_, _ float64) { c.ops = append(c.ops, "translate") }
func (c *recordingCanvas) Rotate(float64)         { c.ops = append(c.ops, "rotate") }
func (c *recordingCanvas) SetFillStyle(string)    { c.ops = append(c.ops, "fill-style") }
func (c *recordingCanvas) SetGlobalAlpha(a float64) {
	c.alphas = append(c.alphas, a)
}
func (c *recordingCanvas) FillRect(_, _, _, _ float64) { c.ops = append(c.ops, "fill") }

type recordingSurface struct {
	cv          *recordingCanvas
	unavailable bool
	resizes     [][2]int
}

func (s *recordingSurface) Resize(w, h int) {
	s.resizes = append(s.resizes, [2]int{w, h})
	s.cv.width, s.cv.height = w, h
}

func (s *recordingSurface) Context() (celebrationport.Canvas, error) {
	if s.unavailable {
		return nil, apperrors.ErrSurfaceUnavailable
	}
	return s.cv, nil
}

type recordingHearts struct {
	sched  *celebrationout.VirtualScheduler
	start  time.Time
	at     []time.Duration
	live   int
	clears int
}

func (h *recordingHearts) Append(domain.Heart) {
	h.at = append(h.at, h.sched.Now().Sub(h.start))
	h.live++
}
func (h *recordingHearts) Clear()   { h.live = 0; h.clears++ }
func (h *recordingHearts) Len() int { return h.live }

type fixture struct {
	sched    *celebrationout.VirtualScheduler
	surface  *recordingSurface
	overlay  *celebrationout.Overlay
	hearts   *recordingHearts
	viewport *celebrationout.Viewport
	ctrl     *service.Controller
}

func newFixture(width, height int) fixture {
	sched := celebrationout.NewVirtualScheduler(epoch, frameInterval)
	f := fixture{
		sched:    sched,
		surface:  &recordingSurface{cv: &recordingCanvas{}},
		overlay:  celebrationout.NewOverlay(),
		hearts:   &recordingHearts{sched: sched, start: epoch},
		viewport: celebrationout.NewViewport(width, height),
	}
	f.ctrl = service.NewController(f.sched, f.surface, f.overlay, f.hearts, f.viewport,
		&seqRandom{values: []float64{0.1, 0.9, 0.4, 0.6, 0.3}}, nil)
	return f
}

func TestStartShowsOverlayAndBuildsBatch(t *testing.T) {
	t.Parallel()
	f := newFixture(2000, 900)
	f.ctrl.Start()
	if f.ctrl.State() != domain.Celebrating || !f.overlay.Visible() {
		t.Fatalf("expected visible celebrating overlay, got %s visible=%v", f.ctrl.State(), f.overlay.Visible())
	}
	if got := len(f.ctrl.Particles()); got != 110 {
		t.Fatalf("expected 110 particles for width 2000, got %d", got)
	}
	if len(f.surface.resizes) != 1 || f.surface.resizes[0] != [2]int{2000, 900} {
		t.Fatalf("surface must be sized to the viewport, got %v", f.surface.resizes)
	}
	if f.viewport.Listeners() != 1 {
		t.Fatalf("expected one resize listener, got %d", f.viewport.Listeners())
	}

	small := newFixture(200, 300)
	small.ctrl.Start()
	if got := len(small.ctrl.Particles()); got != 18 {
		t.Fatalf("expected 18 particles for width 200, got %d", got)
	}
}

func TestFadeStartsAt3200msAndStopsAt3700ms(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()

	f.sched.Advance(frameInterval) // first frame fixes the origin
	if f.ctrl.Frames() != 1 {
		t.Fatalf("expected first frame, got %d", f.ctrl.Frames())
	}
	f.sched.Advance(3180 * time.Millisecond)
	if f.ctrl.Phase() != domain.Falling {
		t.Fatalf("expected falling just before 3200ms, got %s", f.ctrl.Phase())
	}
	f.sched.Advance(frameInterval)
	if f.ctrl.Phase() != domain.Fading {
		t.Fatalf("expected fading at 3200ms, got %s", f.ctrl.Phase())
	}
	f.sched.Advance(480 * time.Millisecond)
	if f.ctrl.State() != domain.Celebrating {
		t.Fatalf("expected still celebrating before 3700ms, got %s", f.ctrl.State())
	}
	f.sched.Advance(frameInterval)
	if f.ctrl.State() != domain.Idle {
		t.Fatalf("expected idle at 3700ms, got %s", f.ctrl.State())
	}
	if f.overlay.Visible() || f.hearts.live != 0 || f.viewport.Listeners() != 0 {
		t.Fatalf("stop side effects missing: visible=%v hearts=%d listeners=%d", f.overlay.Visible(), f.hearts.live, f.viewport.Listeners())
	}
	if last := f.surface.cv.ops[len(f.surface.cv.ops)-1]; last != "clear" {
		t.Fatalf("surface must be cleared on stop, last op %s", last)
	}
	alphas := f.surface.cv.alphas
	if len(alphas) == 0 || alphas[len(alphas)-1] != 1 {
		t.Fatalf("global alpha must be restored after fade frames, got %v", alphas)
	}
	if f.sched.Pending() {
		t.Fatalf("no frame may be requested after the animation completes")
	}
}

func TestVerticalVelocityGrowsByGravityPerFrame(t *testing.T) {
	t.Parallel()
	f := newFixture(600, 400)
	f.ctrl.Start()
	initial := append([]domain.Particle(nil), f.ctrl.Particles()...)

	const frames = 50
	f.sched.Advance(frames * frameInterval)
	if f.ctrl.Frames() != frames {
		t.Fatalf("expected %d frames, got %d", frames, f.ctrl.Frames())
	}
	for i, p := range f.ctrl.Particles() {
		want := initial[i].VY + frames*domain.Gravity
		if math.Abs(p.VY-want) > 1e-9 {
			t.Fatalf("particle %d: expected vy %.5f, got %.5f", i, want, p.VY)
		}
	}
}

func TestFrameDrawsEachParticleWithIsolatedTransform(t *testing.T) {
	t.Parallel()
	f := newFixture(200, 200)
	f.ctrl.Start()
	f.sched.Advance(frameInterval)

	ops := f.surface.cv.ops
	want := []string{"save", "translate", "rotate", "fill-style", "fill", "restore"}
	if ops[0] != "clear" {
		t.Fatalf("frame must start by clearing, got %s", ops[0])
	}
	if len(ops) != 1+len(want)*18 {
		t.Fatalf("expected %d ops, got %d", 1+len(want)*18, len(ops))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i] != want[(i-1)%len(want)] {
			t.Fatalf("op %d: expected %s, got %s", i, want[(i-1)%len(want)], ops[i])
		}
	}
}

func TestHeartsSpawnEvery120ms(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()
	f.sched.RunUntilIdle(10 * time.Second)

	if len(f.hearts.at) != 14 {
		t.Fatalf("expected 14 hearts, got %d", len(f.hearts.at))
	}
	for i, at := range f.hearts.at {
		if at != time.Duration(i)*120*time.Millisecond {
			t.Fatalf("heart %d spawned at %v", i, at)
		}
	}
	if f.ctrl.State() != domain.Idle {
		t.Fatalf("celebration must end on its own, got %s", f.ctrl.State())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()
	f.sched.Advance(time.Second)

	f.ctrl.Stop()
	first := struct {
		state     domain.State
		visible   bool
		hearts    int
		listeners int
	}{f.ctrl.State(), f.overlay.Visible(), f.hearts.live, f.viewport.Listeners()}
	f.ctrl.Stop()
	second := struct {
		state     domain.State
		visible   bool
		hearts    int
		listeners int
	}{f.ctrl.State(), f.overlay.Visible(), f.hearts.live, f.viewport.Listeners()}
	if first != second {
		t.Fatalf("second stop changed state: %+v vs %+v", first, second)
	}

	idle := newFixture(800, 600)
	idle.ctrl.Stop()
	if idle.ctrl.State() != domain.Idle || idle.overlay.Visible() {
		t.Fatalf("stop on an idle controller must be harmless")
	}
}

func TestDismissMidCelebrationLeavesLateHeartsOrphaned(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()
	f.sched.Advance(500 * time.Millisecond)
	if len(f.hearts.at) != 5 {
		t.Fatalf("expected 5 hearts by 500ms, got %d", len(f.hearts.at))
	}

	f.ctrl.Stop()
	if f.overlay.Visible() || f.hearts.live != 0 || f.ctrl.State() != domain.Idle {
		t.Fatalf("dismissal must hide, clear hearts and go idle immediately")
	}
	framesBefore := len(f.surface.cv.ops)

	f.sched.RunUntilIdle(5 * time.Second)
	if len(f.hearts.at) != 14 {
		t.Fatalf("pending heart timers still fire, expected 14 total, got %d", len(f.hearts.at))
	}
	if f.hearts.live != 9 {
		t.Fatalf("expected 9 orphaned hearts, got %d", f.hearts.live)
	}
	if len(f.surface.cv.ops) != framesBefore {
		t.Fatalf("no drawing may happen after stop")
	}
	if f.ctrl.State() != domain.Idle {
		t.Fatalf("late timers must not restart the celebration")
	}
}

func TestRedundantStartOnlyReshowsOverlay(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()
	f.sched.Advance(100 * time.Millisecond)
	batch := f.ctrl.Particles()
	frames := f.ctrl.Frames()

	f.overlay.Hide()
	f.ctrl.Start()
	if !f.overlay.Visible() {
		t.Fatalf("redundant start must show the overlay")
	}
	if &f.ctrl.Particles()[0] != &batch[0] || f.ctrl.Frames() != frames {
		t.Fatalf("redundant start must keep the running batch")
	}
	if len(f.surface.resizes) != 1 || f.viewport.Listeners() != 1 {
		t.Fatalf("redundant start must not resize or re-register: resizes=%d listeners=%d", len(f.surface.resizes), f.viewport.Listeners())
	}
	f.sched.RunUntilIdle(10 * time.Second)
	if len(f.hearts.at) != 14 {
		t.Fatalf("redundant start must not schedule more hearts, got %d", len(f.hearts.at))
	}
}

func TestResizeListenerTracksViewportWhileRunning(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.ctrl.Start()
	f.viewport.SetSize(1024, 768)
	if last := f.surface.resizes[len(f.surface.resizes)-1]; last != [2]int{1024, 768} {
		t.Fatalf("expected surface resized to 1024x768, got %v", last)
	}
	f.sched.Advance(frameInterval)
	if f.surface.cv.width != 1024 {
		t.Fatalf("frame must see the new width")
	}

	f.ctrl.Stop()
	f.viewport.SetSize(640, 480)
	if last := f.surface.resizes[len(f.surface.resizes)-1]; last != [2]int{1024, 768} {
		t.Fatalf("resize after stop must be ignored, got %v", last)
	}
}

func TestUnavailableSurfaceSkipsDrawingOnly(t *testing.T) {
	t.Parallel()
	f := newFixture(800, 600)
	f.surface.unavailable = true
	f.ctrl.Start()
	f.sched.Advance(time.Second)
	if f.ctrl.State() != domain.Celebrating || !f.overlay.Visible() || f.hearts.live == 0 {
		t.Fatalf("overlay and hearts must keep working without a surface")
	}
	f.sched.RunUntilIdle(10 * time.Second)
	if f.ctrl.State() != domain.Idle {
		t.Fatalf("celebration must still end on time, got %s", f.ctrl.State())
	}
	if len(f.surface.cv.ops) != 0 {
		t.Fatalf("nothing may be drawn, got %v", f.surface.cv.ops)
	}
}

func TestRestartAfterStopBuildsFreshBatch(t *testing.T) {
	t.Parallel()
	f := newFixture(400, 300)
	f.ctrl.Start()
	f.sched.RunUntilIdle(10 * time.Second)
	f.ctrl.Start()
	if f.ctrl.State() != domain.Celebrating || f.ctrl.Frames() != 0 {
		t.Fatalf("expected a fresh run, got %s frames=%d", f.ctrl.State(), f.ctrl.Frames())
	}
	f.sched.Advance(frameInterval)
	if f.ctrl.Frames() != 1 || f.ctrl.Phase() != domain.Falling {
		t.Fatalf("fresh run must start falling, got frames=%d phase=%s", f.ctrl.Frames(), f.ctrl.Phase())
	}
}
