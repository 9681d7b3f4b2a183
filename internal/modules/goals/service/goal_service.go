package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"goalcheer/internal/modules/goals/domain"
	goalsout "goalcheer/internal/modules/goals/port/out"
	"goalcheer/internal/platform/clock"
	apperrors "goalcheer/internal/platform/errors"
	"goalcheer/internal/platform/id"
)

type GoalService struct {
	clock clock.Clock
	idGen id.Generator
	store goalsout.GoalStore
}

func NewGoalService(clock clock.Clock, idGen id.Generator, store goalsout.GoalStore) *GoalService {
	return &GoalService{clock: clock, idGen: idGen, store: store}
}

func (s *GoalService) Add(ctx context.Context, text string) (domain.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Goal{}, fmt.Errorf("goal text is required: %w", apperrors.ErrInvalidInput)
	}
	goal := domain.Goal{
		ID:        s.idGen.New(),
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Upsert(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Toggle(ctx context.Context, goalID string) (domain.Goal, error) {
	if strings.TrimSpace(goalID) == "" {
		return domain.Goal{}, fmt.Errorf("goal id is required: %w", apperrors.ErrInvalidInput)
	}
	goal, err := s.store.Get(ctx, goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	goal.Done = !goal.Done
	if err := s.store.Upsert(ctx, goal); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *GoalService) Remove(ctx context.Context, goalID string) error {
	if strings.TrimSpace(goalID) == "" {
		return fmt.Errorf("goal id is required: %w", apperrors.ErrInvalidInput)
	}
	return s.store.Delete(ctx, goalID)
}

func (s *GoalService) Clear(ctx context.Context) error {
	return s.store.DeleteAll(ctx)
}

func (s *GoalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.store.List(ctx)
}

func (s *GoalService) Now() time.Time { return s.clock.Now() }
