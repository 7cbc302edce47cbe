package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType classifies a nutrition entry.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
	MealSnack     MealType = "Snack"
)

// FoodItem is one line of a meal.
type FoodItem struct {
	Name        string   `json:"name"`
	Calories    float64  `json:"calories"`
	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fats        *float64 `json:"fats,omitempty"`
	ServingSize string   `json:"servingSize,omitempty"`
}

// Nutrition is a logged meal. Food items are kept inline with the entry.
type Nutrition struct {
	ID            string     `json:"_id" gorm:"type:char(36);primaryKey"`
	UserID        string     `json:"userId" gorm:"size:36;not null;index"`
	MealType      MealType   `json:"mealType" gorm:"type:varchar(16);not null"`
	FoodItems     []FoodItem `json:"foodItems" gorm:"serializer:json;type:text"`
	TotalCalories float64    `json:"totalCalories" gorm:"not null"`
	Notes         string     `json:"notes" gorm:"type:text"`
	Date          time.Time  `json:"date" gorm:"not null;index"`
}

// BeforeCreate sets the id and the logging timestamp.
func (n *Nutrition) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	return nil
}

// SumCalories totals the calories of all food items.
func SumCalories(items []FoodItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Calories
	}
	return total
}
