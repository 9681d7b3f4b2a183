package in

import (
	"context"

	goalsdto "goalcheer/internal/modules/goals/dto"
	goalsin "goalcheer/internal/modules/goals/port/in"
)

type CLIHandler struct {
	usecase goalsin.Usecase
}

func NewCLIHandler(usecase goalsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, text string) (goalsdto.MutationOutput, error) {
	return h.usecase.Add(ctx, goalsdto.AddInput{Text: text})
}

func (h CLIHandler) Toggle(ctx context.Context, id string) (goalsdto.MutationOutput, error) {
	return h.usecase.Toggle(ctx, id)
}

func (h CLIHandler) Remove(ctx context.Context, id string) (goalsdto.ListOutput, error) {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) ClearAll(ctx context.Context) (goalsdto.ListOutput, error) {
	return h.usecase.ClearAll(ctx)
}

func (h CLIHandler) List(ctx context.Context) (goalsdto.ListOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Export(ctx context.Context, title string) (goalsdto.ExportOutput, error) {
	return h.usecase.Export(ctx, goalsdto.ExportInput{Title: title})
}
