package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SleepQuality is the self-reported quality of a night.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "Poor"
	SleepFair      SleepQuality = "Fair"
	SleepGood      SleepQuality = "Good"
	SleepExcellent SleepQuality = "Excellent"
)

// Sleep is a logged sleep period. Duration is in whole minutes.
type Sleep struct {
	ID        string       `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID    string       `json:"userId" gorm:"size:36;not null;index"`
	StartTime time.Time    `json:"startTime" gorm:"not null;index"`
	EndTime   time.Time    `json:"endTime" gorm:"not null"`
	Duration  int          `json:"duration" gorm:"not null"`
	Quality   SleepQuality `json:"quality" gorm:"type:varchar(16);not null"`
	Notes     string       `json:"notes" gorm:"type:text"`
	Date      time.Time    `json:"date" gorm:"not null"`
}

// SleepMinutes is the rounded number of minutes between start and end.
func SleepMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// BeforeCreate sets the id and the logging timestamp.
func (s *Sleep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	return nil
}
