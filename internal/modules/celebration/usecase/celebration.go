package usecase

import (
	"context"

	"goalcheer/internal/modules/celebration/domain"
	celebrationdto "goalcheer/internal/modules/celebration/dto"
	celebrationin "goalcheer/internal/modules/celebration/port/in"
	"goalcheer/internal/modules/celebration/service"
)

type Interactor struct {
	ctrl *service.Controller
}

func NewInteractor(ctrl *service.Controller) celebrationin.Usecase {
	return &Interactor{ctrl: ctrl}
}

// Trigger is called after every goal-list mutation. It starts a celebration
// only when the list is non-empty and fully done.
func (i *Interactor) Trigger(ctx context.Context, input celebrationdto.TriggerInput) (celebrationdto.TriggerOutput, error) {
	if !domain.ShouldCelebrate(input.Completed) {
		status, err := i.Status(ctx)
		return celebrationdto.TriggerOutput{Status: status}, err
	}
	started := i.ctrl.State() == domain.Idle
	i.ctrl.Start()
	status, err := i.Status(ctx)
	return celebrationdto.TriggerOutput{Started: started, Status: status}, err
}

func (i *Interactor) Dismiss(ctx context.Context) (celebrationdto.StatusOutput, error) {
	i.ctrl.Stop()
	return i.Status(ctx)
}

func (i *Interactor) Status(context.Context) (celebrationdto.StatusOutput, error) {
	return celebrationdto.StatusOutput{
		State:     i.ctrl.State().String(),
		Phase:     i.ctrl.Phase().String(),
		Particles: len(i.ctrl.Particles()),
		Hearts:    i.ctrl.HeartCount(),
		Visible:   i.ctrl.OverlayVisible(),
	}, nil
}
