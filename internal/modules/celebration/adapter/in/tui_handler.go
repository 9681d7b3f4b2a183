package in

import (
	"context"

	celebrationdto "goalcheer/internal/modules/celebration/dto"
	celebrationin "goalcheer/internal/modules/celebration/port/in"
)

// TUIHandler is the entry point the terminal UI drives the celebration with.
type TUIHandler struct {
	usecase celebrationin.Usecase
}

func NewTUIHandler(usecase celebrationin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) GoalsChanged(ctx context.Context, completed []bool) (celebrationdto.TriggerOutput, error) {
	return h.usecase.Trigger(ctx, celebrationdto.TriggerInput{Completed: completed})
}

func (h TUIHandler) Dismiss(ctx context.Context) (celebrationdto.StatusOutput, error) {
	return h.usecase.Dismiss(ctx)
}

func (h TUIHandler) Status(ctx context.Context) (celebrationdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}
