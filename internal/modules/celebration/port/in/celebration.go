package in

import (
	"context"

	"goalcheer/internal/modules/celebration/dto"
)

type Usecase interface {
	Trigger(ctx context.Context, input dto.TriggerInput) (dto.TriggerOutput, error)
	Dismiss(ctx context.Context) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
}
