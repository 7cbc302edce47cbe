package service

import (
	"context"
	"fmt"
	"time"

	apperrors "healthfit/internal/errors"
	"healthfit/internal/metrics"
	"healthfit/internal/model"
	"healthfit/internal/repository"
)

// RecordService logs and lists one kind of record for the signed-in user.
type RecordService[T model.Record] interface {
	// Log stores record as owned by userID and returns it as persisted.
	Log(ctx context.Context, userID string, record *T) (*T, error)
	// List returns userID's records, newest first.
	List(ctx context.Context, userID string) ([]T, error)
}

type (
	ActivityService  = RecordService[model.Activity]
	NutritionService = RecordService[model.Nutrition]
	SleepService     = RecordService[model.Sleep]
)

// prepareFunc stamps ownership and server-side fields onto a new record.
type prepareFunc[T model.Record] func(userID string, record *T, now time.Time) error

type recordService[T model.Record] struct {
	kind    string
	repo    repository.RecordRepository[T]
	prepare prepareFunc[T]
	now     func() time.Time
}

func (s *recordService[T]) Log(ctx context.Context, userID string, record *T) (*T, error) {
	if err := s.prepare(userID, record, s.now()); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}
	metrics.RecordCreated(s.kind)
	return record, nil
}

func (s *recordService[T]) List(ctx context.Context, userID string) ([]T, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return records, nil
}

// NewActivityService builds the activity log service.
func NewActivityService(repo repository.RecordRepository[model.Activity], now func() time.Time) ActivityService {
	return &recordService[model.Activity]{
		kind: "activity",
		repo: repo,
		prepare: func(userID string, a *model.Activity, now time.Time) error {
			a.ID = ""
			a.UserID = userID
			a.Date = now
			return nil
		},
		now: clock(now),
	}
}

// NewNutritionService builds the meal log service. A missing total is
// derived from the food items.
func NewNutritionService(repo repository.RecordRepository[model.Nutrition], now func() time.Time) NutritionService {
	return &recordService[model.Nutrition]{
		kind: "nutrition",
		repo: repo,
		prepare: func(userID string, n *model.Nutrition, now time.Time) error {
			n.ID = ""
			n.UserID = userID
			n.Date = now
			if n.TotalCalories == 0 {
				n.TotalCalories = model.SumCalories(n.FoodItems)
			}
			return nil
		},
		now: clock(now),
	}
}

// NewSleepService builds the sleep log service. Duration is always derived
// from the start and end times.
func NewSleepService(repo repository.RecordRepository[model.Sleep], now func() time.Time) SleepService {
	return &recordService[model.Sleep]{
		kind: "sleep",
		repo: repo,
		prepare: func(userID string, s *model.Sleep, now time.Time) error {
			if !s.EndTime.After(s.StartTime) {
				return apperrors.NewValidationError("endTime must be after startTime")
			}
			s.ID = ""
			s.UserID = userID
			s.Date = now
			s.Duration = model.SleepMinutes(s.StartTime, s.EndTime)
			return nil
		},
		now: clock(now),
	}
}

func clock(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}
