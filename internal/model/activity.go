package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intensity of a logged activity.
type Intensity string

const (
	IntensityLow    Intensity = "Low"
	IntensityMedium Intensity = "Medium"
	IntensityHigh   Intensity = "High"
)

// Activity is a single logged workout.
type Activity struct {
	ID             string    `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID         string    `json:"userId" gorm:"size:36;not null;index"`
	ActivityType   string    `json:"activityType" gorm:"size:255;not null"`
	Duration       float64   `json:"duration" gorm:"not null"`
	Intensity      Intensity `json:"intensity" gorm:"type:varchar(10);not null"`
	CaloriesBurned float64   `json:"caloriesBurned" gorm:"not null"`
	Notes          string    `json:"notes" gorm:"type:text"`
	Date           time.Time `json:"date" gorm:"not null;index"`
}

// BeforeCreate sets the id and the logging timestamp.
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	return nil
}
