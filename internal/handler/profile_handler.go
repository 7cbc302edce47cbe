package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"healthfit/internal/model"
	"healthfit/internal/service"
)

// ProfileHandler handles the signed-in user's profile.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest replaces the whole profile. Omitted fields are cleared.
type ProfileRequest struct {
	Age    *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Height *string `json:"height" validate:"omitempty,max=64"`
	Weight *string `json:"weight" validate:"omitempty,max=64"`
	Goals  *string `json:"goals"`
}

// GetProfile godoc
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Security CookieAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context, userID string) error {
	user, err := h.profileService.Get(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Replace my profile
// @Tags profile
// @Accept json
// @Produce json
// @Security CookieAuth
// @Param request body ProfileRequest true "Profile"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context, userID string) error {
	var req ProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileService.Update(c.Request().Context(), userID, model.Profile{
		Age:    req.Age,
		Height: req.Height,
		Weight: req.Weight,
		Goals:  req.Goals,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
