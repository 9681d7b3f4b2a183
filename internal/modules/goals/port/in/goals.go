package in

import (
	"context"

	"goalcheer/internal/modules/goals/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.MutationOutput, error)
	Toggle(ctx context.Context, id string) (dto.MutationOutput, error)
	Remove(ctx context.Context, id string) (dto.ListOutput, error)
	ClearAll(ctx context.Context) (dto.ListOutput, error)
	List(ctx context.Context) (dto.ListOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
}
