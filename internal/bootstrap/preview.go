package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	celebrationinadapter "goalcheer/internal/modules/celebration/adapter/in"
	celebrationoutadapter "goalcheer/internal/modules/celebration/adapter/out"
	"goalcheer/internal/modules/celebration/domain"
	celebrationservice "goalcheer/internal/modules/celebration/service"
	celebrationusecase "goalcheer/internal/modules/celebration/usecase"
	"goalcheer/internal/platform/random"
)

const (
	previewFrameRate = 60
	// previewLimit bounds a preview run well past the natural end of one
	// celebration.
	previewLimit = 10 * time.Second
)

var previewEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type PreviewOptions struct {
	OutDir string
	Width  int
	Height int
	Seed   uint64
	// Every writes one PNG per this many frames.
	Every int
}

type PreviewResult struct {
	Frames     int
	Written    []string
	Elapsed    time.Duration
	PeakHearts int
	FinalState string
	Particles  int
	TimedOut   bool
}

// RunPreview plays one seeded celebration on a virtual clock and writes
// sampled frames of the confetti surface as PNG files.
func RunPreview(ctx context.Context, opts PreviewOptions, log hclog.Logger) (PreviewResult, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return PreviewResult{}, fmt.Errorf("preview size must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.Every <= 0 {
		opts.Every = 1
	}
	if log == nil {
		log = hclog.NewNullLogger()
	}
	writer, err := celebrationoutadapter.NewPNGFrameWriter(opts.OutDir)
	if err != nil {
		return PreviewResult{}, err
	}

	interval := time.Second / previewFrameRate
	sched := celebrationoutadapter.NewVirtualScheduler(previewEpoch, interval)
	hearts := celebrationoutadapter.NewHeartLayer(previewFrameRate, sched.Now)
	surface := celebrationoutadapter.NewCanvasSurface()
	viewport := celebrationoutadapter.NewViewport(opts.Width, opts.Height)
	ctrl := celebrationservice.NewController(
		sched,
		surface,
		celebrationoutadapter.NewOverlay(),
		hearts,
		viewport,
		random.NewSeeded(opts.Seed),
		log.Named("celebration"),
	)
	handler := celebrationinadapter.NewTUIHandler(celebrationusecase.NewInteractor(ctrl))

	started, err := handler.GoalsChanged(ctx, []bool{true})
	if err != nil {
		return PreviewResult{}, err
	}
	result := PreviewResult{Particles: started.Status.Particles}

	for sched.Pending() && sched.Now().Sub(previewEpoch) < previewLimit {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		running := ctrl.State() == domain.Celebrating
		sched.Advance(interval)
		hearts.Advance(sched.Now(), opts.Height)
		result.PeakHearts = max(result.PeakHearts, hearts.Len())
		if !running {
			continue
		}
		result.Frames++
		// The closing frame clears the surface; there is nothing to sample.
		if ctrl.State() != domain.Celebrating || result.Frames%opts.Every != 0 || surface.Image() == nil {
			continue
		}
		path, err := writer.Write(result.Frames, surface.Image())
		if err != nil {
			return result, err
		}
		result.Written = append(result.Written, path)
	}
	result.Elapsed = sched.Now().Sub(previewEpoch)
	result.TimedOut = sched.Pending()

	status, err := handler.Status(ctx)
	if err != nil {
		return result, err
	}
	result.FinalState = status.State
	log.Debug("preview finished", "frames", result.Frames, "written", len(result.Written), "elapsed", result.Elapsed)
	return result, nil
}
