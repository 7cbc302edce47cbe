package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "healthfit/internal/errors"
	"healthfit/internal/model"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func frozen() time.Time { return fixedNow }

func TestActivityService_Log(t *testing.T) {
	repo := new(MockRecordRepository[model.Activity])
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Activity")).Return(nil)
	svc := NewActivityService(repo, frozen)

	in := &model.Activity{
		ID:             "client-chosen",
		UserID:         "someone-else",
		ActivityType:   "Running",
		Duration:       30,
		Intensity:      model.IntensityMedium,
		CaloriesBurned: 300,
		Date:           time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	got, err := svc.Log(context.Background(), "user-1", in)

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Empty(t, got.ID)
	assert.Equal(t, fixedNow, got.Date)
	repo.AssertExpectations(t)
}

func TestActivityService_LogStoreFailure(t *testing.T) {
	repo := new(MockRecordRepository[model.Activity])
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	svc := NewActivityService(repo, frozen)

	_, err := svc.Log(context.Background(), "user-1", &model.Activity{ActivityType: "Yoga"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestNutritionService_TotalCalories(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  float64
	}{
		{"derived when absent", 0, 450},
		{"kept when supplied", 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRecordRepository[model.Nutrition])
			repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			svc := NewNutritionService(repo, frozen)

			got, err := svc.Log(context.Background(), "user-1", &model.Nutrition{
				MealType: model.MealLunch,
				FoodItems: []model.FoodItem{
					{Name: "Rice", Calories: 200},
					{Name: "Chicken", Calories: 250},
				},
				TotalCalories: tt.total,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.TotalCalories)
			assert.Equal(t, "user-1", got.UserID)
		})
	}
}

func TestSleepService_Log(t *testing.T) {
	start := time.Date(2026, 3, 13, 23, 0, 0, 0, time.UTC)

	t.Run("derives duration in minutes", func(t *testing.T) {
		repo := new(MockRecordRepository[model.Sleep])
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		svc := NewSleepService(repo, frozen)

		got, err := svc.Log(context.Background(), "user-1", &model.Sleep{
			StartTime: start,
			EndTime:   start.Add(7*time.Hour + 30*time.Minute),
			Duration:  1,
			Quality:   model.SleepGood,
		})

		require.NoError(t, err)
		assert.Equal(t, 450, got.Duration)
		assert.Equal(t, fixedNow, got.Date)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		repo := new(MockRecordRepository[model.Sleep])
		svc := NewSleepService(repo, frozen)

		_, err := svc.Log(context.Background(), "user-1", &model.Sleep{
			StartTime: start,
			EndTime:   start,
			Quality:   model.SleepPoor,
		})

		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "endTime must be after startTime", vErr.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRecordService_ListIsScopedToUser(t *testing.T) {
	repo := new(MockRecordRepository[model.Activity])
	repo.On("ListByUser", mock.Anything, "user-1").Return([]model.Activity{
		{ID: "a2", UserID: "user-1"},
		{ID: "a1", UserID: "user-1"},
	}, nil)
	svc := NewActivityService(repo, nil)

	got, err := svc.List(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Len(t, got, 2)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ListByUser", mock.Anything, "user-2")
}
