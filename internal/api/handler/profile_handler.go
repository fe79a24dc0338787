package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skipper-116/devhub-backend/internal/api/metrics"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

// ProfileHandler covers the authenticated user's own account.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type updateProfileRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email" validate:"omitempty,email"`
	Avatar         string   `json:"avatar"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	GithubUsername string   `json:"githubUsername"`
}

type deleteProfileRequest struct {
	ID     string `json:"id" validate:"required"`
	Reason string `json:"reason"`
}

// Get handles GET /api/v1/profile.
//
// @Summary      Get the authenticated user's profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), actorID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PUT /api/v1/profile. Absent fields stay unchanged.
//
// @Summary      Update the authenticated user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), actorID, ports.UpdateProfileInput{
		Name:           req.Name,
		Email:          req.Email,
		Avatar:         req.Avatar,
		Bio:            req.Bio,
		Skills:         req.Skills,
		GithubUsername: req.GithubUsername,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/v1/profile: a soft delete of the target
// account, permitted to the account itself or an admin. The reason is
// validated here, before the lifecycle transition is invoked.
//
// @Summary      Delete a user profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteProfileRequest  true  "Target id and reason"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /profile [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	actorID, err := principalID(c)
	if err != nil {
		return err
	}

	var req deleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a reason for deleting the user")
	}

	if err := h.service.Delete(c.Request().Context(), actorID, req.ID, req.Reason); err != nil {
		return err
	}

	metrics.EntitiesVoidedTotal.WithLabelValues("user").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
