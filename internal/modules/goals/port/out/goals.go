package out

import (
	"context"
	"time"

	"goalcheer/internal/modules/goals/domain"
)

type GoalStore interface {
	// List returns goals newest first.
	List(ctx context.Context) ([]domain.Goal, error)
	Get(ctx context.Context, id string) (domain.Goal, error)
	Upsert(ctx context.Context, goal domain.Goal) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type Exporter interface {
	Export(ctx context.Context, title string, goals []domain.Goal, at time.Time) (string, error)
}
