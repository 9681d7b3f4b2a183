package usecase

import (
	"context"

	"goalcheer/internal/modules/goals/domain"
	goalsdto "goalcheer/internal/modules/goals/dto"
	goalsin "goalcheer/internal/modules/goals/port/in"
	goalsout "goalcheer/internal/modules/goals/port/out"
	"goalcheer/internal/modules/goals/service"
)

type Interactor struct {
	svc      *service.GoalService
	exporter goalsout.Exporter
}

func NewInteractor(svc *service.GoalService, exporter goalsout.Exporter) goalsin.Usecase {
	return &Interactor{svc: svc, exporter: exporter}
}

func (i *Interactor) Add(ctx context.Context, input goalsdto.AddInput) (goalsdto.MutationOutput, error) {
	goal, err := i.svc.Add(ctx, input.Text)
	if err != nil {
		return goalsdto.MutationOutput{}, err
	}
	return i.mutation(ctx, goal)
}

func (i *Interactor) Toggle(ctx context.Context, id string) (goalsdto.MutationOutput, error) {
	goal, err := i.svc.Toggle(ctx, id)
	if err != nil {
		return goalsdto.MutationOutput{}, err
	}
	return i.mutation(ctx, goal)
}

func (i *Interactor) Remove(ctx context.Context, id string) (goalsdto.ListOutput, error) {
	if err := i.svc.Remove(ctx, id); err != nil {
		return goalsdto.ListOutput{}, err
	}
	return i.List(ctx)
}

func (i *Interactor) ClearAll(ctx context.Context) (goalsdto.ListOutput, error) {
	if err := i.svc.Clear(ctx); err != nil {
		return goalsdto.ListOutput{}, err
	}
	return i.List(ctx)
}

func (i *Interactor) List(ctx context.Context) (goalsdto.ListOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return goalsdto.ListOutput{}, err
	}
	return toListOutput(goals), nil
}

func (i *Interactor) Export(ctx context.Context, input goalsdto.ExportInput) (goalsdto.ExportOutput, error) {
	goals, err := i.svc.List(ctx)
	if err != nil {
		return goalsdto.ExportOutput{}, err
	}
	title := input.Title
	if title == "" {
		title = "Goals"
	}
	path, err := i.exporter.Export(ctx, title, goals, i.svc.Now())
	if err != nil {
		return goalsdto.ExportOutput{}, err
	}
	return goalsdto.ExportOutput{
		Path:     path,
		Total:    len(goals),
		Done:     domain.DoneCount(goals),
		Progress: domain.Progress(goals),
	}, nil
}

func (i *Interactor) mutation(ctx context.Context, goal domain.Goal) (goalsdto.MutationOutput, error) {
	list, err := i.List(ctx)
	if err != nil {
		return goalsdto.MutationOutput{}, err
	}
	return goalsdto.MutationOutput{Goal: toGoalOutput(goal), List: list}, nil
}

func toListOutput(goals []domain.Goal) goalsdto.ListOutput {
	out := goalsdto.ListOutput{
		Goals:     make([]goalsdto.GoalOutput, 0, len(goals)),
		Total:     len(goals),
		Done:      domain.DoneCount(goals),
		Progress:  domain.Progress(goals),
		AllDone:   domain.AllDone(goals),
		Completed: domain.Completed(goals),
	}
	for _, g := range goals {
		out.Goals = append(out.Goals, toGoalOutput(g))
	}
	return out
}

func toGoalOutput(g domain.Goal) goalsdto.GoalOutput {
	return goalsdto.GoalOutput{ID: g.ID, Text: g.Text, Done: g.Done, CreatedAt: g.CreatedAt}
}
