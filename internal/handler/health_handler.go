package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"healthfit/internal/model"
	"healthfit/internal/service"
)

// HealthHandler handles the activity, nutrition and sleep logs. Every
// method runs behind Authenticated and only ever sees its caller's records.
type HealthHandler struct {
	activities service.ActivityService
	nutrition  service.NutritionService
	sleep      service.SleepService
}

// NewHealthHandler creates a new health log handler.
func NewHealthHandler(activities service.ActivityService, nutrition service.NutritionService, sleep service.SleepService) *HealthHandler {
	return &HealthHandler{activities: activities, nutrition: nutrition, sleep: sleep}
}

// ActivityRequest represents a workout to log.
type ActivityRequest struct {
	ActivityType   string   `json:"activityType" validate:"required"`
	Duration       *float64 `json:"duration" validate:"required,gte=0"`
	Intensity      string   `json:"intensity" validate:"required,oneof=Low Medium High"`
	CaloriesBurned *float64 `json:"caloriesBurned" validate:"required,gte=0"`
	Notes          string   `json:"notes"`
}

// FoodItemRequest is one item of a meal.
type FoodItemRequest struct {
	Name        string   `json:"name" validate:"required"`
	Calories    *float64 `json:"calories" validate:"required,gte=0"`
	Protein     *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fats        *float64 `json:"fats" validate:"omitempty,gte=0"`
	ServingSize string   `json:"servingSize"`
}

// NutritionRequest represents a meal to log. totalCalories defaults to the
// sum of the items.
type NutritionRequest struct {
	MealType      string            `json:"mealType" validate:"required,oneof=Breakfast Lunch Dinner Snack"`
	FoodItems     []FoodItemRequest `json:"foodItems" validate:"required,min=1,dive"`
	TotalCalories *float64          `json:"totalCalories" validate:"omitempty,gte=0"`
	Notes         string            `json:"notes"`
}

// SleepRequest represents a sleep period to log.
type SleepRequest struct {
	StartTime *time.Time `json:"startTime" validate:"required"`
	EndTime   *time.Time `json:"endTime" validate:"required"`
	Quality   string     `json:"quality" validate:"required,oneof=Poor Fair Good Excellent"`
	Notes     string     `json:"notes"`
}

// ActivityCreated is returned after logging an activity.
type ActivityCreated struct {
	Message  string          `json:"message"`
	Activity *model.Activity `json:"activity"`
}

// NutritionCreated is returned after logging a meal.
type NutritionCreated struct {
	Message   string           `json:"message"`
	Nutrition *model.Nutrition `json:"nutrition"`
}

// SleepCreated is returned after logging sleep.
type SleepCreated struct {
	Message string       `json:"message"`
	Sleep   *model.Sleep `json:"sleep"`
}

// LogActivity godoc
// @Summary Log an activity
// @Tags health-activity
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body ActivityRequest true "Activity"
// @Success 201 {object} ActivityCreated
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/activities [post]
func (h *HealthHandler) LogActivity(c echo.Context, userID string) error {
	var req ActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	activity, err := h.activities.Log(c.Request().Context(), userID, &model.Activity{
		ActivityType:   req.ActivityType,
		Duration:       *req.Duration,
		Intensity:      model.Intensity(req.Intensity),
		CaloriesBurned: *req.CaloriesBurned,
		Notes:          req.Notes,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, ActivityCreated{
		Message:  "Activity logged successfully",
		Activity: activity,
	})
}

// ListActivities godoc
// @Summary List my activities, newest first
// @Tags health-activity
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.Activity
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/activities [get]
func (h *HealthHandler) ListActivities(c echo.Context, userID string) error {
	activities, err := h.activities.List(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}

// LogNutrition godoc
// @Summary Log a meal
// @Tags health-activity
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body NutritionRequest true "Meal"
// @Success 201 {object} NutritionCreated
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/nutrition [post]
func (h *HealthHandler) LogNutrition(c echo.Context, userID string) error {
	var req NutritionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]model.FoodItem, 0, len(req.FoodItems))
	for _, it := range req.FoodItems {
		items = append(items, model.FoodItem{
			Name:        it.Name,
			Calories:    *it.Calories,
			Protein:     it.Protein,
			Carbs:       it.Carbs,
			Fats:        it.Fats,
			ServingSize: it.ServingSize,
		})
	}
	meal := &model.Nutrition{
		MealType:  model.MealType(req.MealType),
		FoodItems: items,
		Notes:     req.Notes,
	}
	if req.TotalCalories != nil {
		meal.TotalCalories = *req.TotalCalories
	}

	nutrition, err := h.nutrition.Log(c.Request().Context(), userID, meal)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, NutritionCreated{
		Message:   "Nutrition data logged successfully",
		Nutrition: nutrition,
	})
}

// ListNutrition godoc
// @Summary List my meals, newest first
// @Tags health-activity
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.Nutrition
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/nutrition [get]
func (h *HealthHandler) ListNutrition(c echo.Context, userID string) error {
	meals, err := h.nutrition.List(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, meals)
}

// LogSleep godoc
// @Summary Log a sleep period
// @Tags health-activity
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body SleepRequest true "Sleep"
// @Success 201 {object} SleepCreated
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/sleep [post]
func (h *HealthHandler) LogSleep(c echo.Context, userID string) error {
	var req SleepRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sleep, err := h.sleep.Log(c.Request().Context(), userID, &model.Sleep{
		StartTime: *req.StartTime,
		EndTime:   *req.EndTime,
		Quality:   model.SleepQuality(req.Quality),
		Notes:     req.Notes,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, SleepCreated{
		Message: "Sleep data logged successfully",
		Sleep:   sleep,
	})
}

// ListSleep godoc
// @Summary List my sleep, newest first
// @Tags health-activity
// @Produce json
// @Security CookieAuth
// @Success 200 {array} model.Sleep
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /health-activity/sleep [get]
func (h *HealthHandler) ListSleep(c echo.Context, userID string) error {
	records, err := h.sleep.List(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, records)
}
