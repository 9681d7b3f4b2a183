package service

import (
	"goalcheer/internal/modules/celebration/domain"
	celebrationout "goalcheer/internal/modules/celebration/port/out"
	"goalcheer/internal/platform/random"
)

// HeartSpawner fires the fixed heart sequence. Timers are never cancelled:
// hearts created after a stop land in an already cleared container and
// expire there on their own.
type HeartSpawner struct {
	sched     celebrationout.Scheduler
	container celebrationout.HeartContainer
	rng       random.Source
	spawned   int
}

func NewHeartSpawner(sched celebrationout.Scheduler, container celebrationout.HeartContainer, rng random.Source) *HeartSpawner {
	return &HeartSpawner{sched: sched, container: container, rng: rng}
}

func (h *HeartSpawner) Schedule() {
	for _, offset := range domain.HeartOffsets() {
		h.sched.AfterFunc(offset, h.spawn)
	}
}

// Spawned counts hearts created so far, including late ones.
func (h *HeartSpawner) Spawned() int { return h.spawned }

func (h *HeartSpawner) spawn() {
	h.spawned++
	h.container.Append(domain.NewHeart(h.rng))
}
