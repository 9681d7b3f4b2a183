package usecase_test

import (
	"context"
	"testing"
	"time"

	celebrationout "goalcheer/internal/modules/celebration/adapter/out"
	celebrationdto "goalcheer/internal/modules/celebration/dto"
	celebrationin "goalcheer/internal/modules/celebration/port/in"
	"goalcheer/internal/modules/celebration/service"
	"goalcheer/internal/modules/celebration/usecase"
	"goalcheer/internal/platform/random"
)

type harness struct {
	sched  *celebrationout.VirtualScheduler
	hearts *celebrationout.HeartLayer
	uc     celebrationin.Usecase
}

func newHarness() harness {
	sched := celebrationout.NewVirtualScheduler(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC), 20*time.Millisecond)
	hearts := celebrationout.NewHeartLayer(50, sched.Now)
	ctrl := service.NewController(sched, celebrationout.NewCanvasSurface(), celebrationout.NewOverlay(), hearts,
		celebrationout.NewViewport(640, 480), random.NewSeeded(7), nil)
	return harness{sched: sched, hearts: hearts, uc: usecase.NewInteractor(ctrl)}
}

func (h harness) trigger(completed []bool) (celebrationdto.TriggerOutput, error) {
	return h.uc.Trigger(context.Background(), celebrationdto.TriggerInput{Completed: completed})
}

func TestTriggerScenarios(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		completed []bool
		started   bool
	}{
		{name: "one done goal", completed: []bool{true}, started: true},
		{name: "one open goal", completed: []bool{true, false}, started: false},
		{name: "empty list", completed: nil, started: false},
	}
	for _, tc := range cases {
		out, err := newHarness().trigger(tc.completed)
		if err != nil {
			t.Fatalf("%s: trigger: %v", tc.name, err)
		}
		if out.Started != tc.started {
			t.Fatalf("%s: expected started=%v, got %v", tc.name, tc.started, out.Started)
		}
		if out.Status.Visible != tc.started {
			t.Fatalf("%s: expected overlay visible=%v", tc.name, tc.started)
		}
	}
}

func TestRepeatedTriggerIsIdempotentAndDismissStops(t *testing.T) {
	t.Parallel()
	h := newHarness()
	first, err := h.trigger([]bool{true, true})
	if err != nil || !first.Started {
		t.Fatalf("expected first trigger to start, got %+v err=%v", first, err)
	}
	if first.Status.Particles != 72 || first.Status.State != "celebrating" {
		t.Fatalf("unexpected status %+v", first.Status)
	}
	h.sched.Advance(300 * time.Millisecond)
	second, err := h.trigger([]bool{true, true})
	if err != nil || second.Started {
		t.Fatalf("second trigger must not restart, got %+v err=%v", second, err)
	}
	if h.hearts.Len() != 3 {
		t.Fatalf("expected 3 hearts by 300ms, got %d", h.hearts.Len())
	}

	status, err := h.uc.Dismiss(context.Background())
	if err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if status.State != "idle" || status.Visible || status.Hearts != 0 || status.Particles != 0 {
		t.Fatalf("unexpected status after dismiss %+v", status)
	}
}
