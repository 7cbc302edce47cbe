package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "healthfit/internal/errors"
)

type item struct {
	Name     string   `json:"name" validate:"required"`
	Calories *float64 `json:"calories" validate:"required,gte=0"`
}

type sample struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	Intensity string   `json:"intensity" validate:"required,oneof=Low Medium High"`
	Items     []item   `json:"foodItems" validate:"required,min=1,dive"`
	Duration  *float64 `json:"duration" validate:"required,gte=0"`
}

func ptr(f float64) *float64 { return &f }

func valid() sample {
	return sample{
		Email:     "a@x.com",
		Password:  "password123",
		Intensity: "Medium",
		Items:     []item{{Name: "Oats", Calories: ptr(150)}},
		Duration:  ptr(30),
	}
}

func TestCustomValidator_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sample)
		want   string
	}{
		{"bad email", func(s *sample) { s.Email = "nope" }, "Please provide a valid email"},
		{"short password", func(s *sample) { s.Password = "short" }, "password must be at least 8 characters long"},
		{"bad enum", func(s *sample) { s.Intensity = "Extreme" }, "intensity must be one of: Low, Medium, High"},
		{"missing number", func(s *sample) { s.Duration = nil }, "duration is required"},
		{"negative number", func(s *sample) { s.Duration = ptr(-1) }, "duration must be greater than or equal to 0"},
		{"empty list", func(s *sample) { s.Items = []item{} }, "foodItems must contain at least 1 item(s)"},
		{"nested field", func(s *sample) { s.Items[0].Name = "" }, "foodItems[0].name is required"},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := v.Validate(&s)
			var vErr *apperrors.ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, tt.want, vErr.Message)
			}
		})
	}
}

func TestCustomValidator_Valid(t *testing.T) {
	s := valid()
	assert.NoError(t, New().Validate(&s))
}
