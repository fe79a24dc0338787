package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skipper-116/devhub-backend/internal/api/metrics"
	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type registerRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Password       string   `json:"password" validate:"required,min=8"`
	Avatar         string   `json:"avatar"`
	Bio            string   `json:"bio"`
	Skills         []string `json:"skills"`
	GithubUsername string   `json:"githubUsername"`
	Role           string   `json:"role" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public account view. The wire names follow the
// original API contract (camelCase).
type userResponse struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Avatar         string   `json:"avatar,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	Skills         []string `json:"skills"`
	GithubUsername string   `json:"githubUsername,omitempty"`
	Role           string   `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Name:           u.Name,
		Email:          u.Email,
		Avatar:         u.Avatar,
		Bio:            u.Bio,
		Skills:         u.Skills,
		GithubUsername: u.GithubUsername,
		Role:           u.Role,
	}
}

// Register handles POST /api/v1/auth/register.
//
// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Avatar:         req.Avatar,
		Bio:            req.Bio,
		Skills:         req.Skills,
		GithubUsername: req.GithubUsername,
		Role:           req.Role,
	})
	if err != nil {
		switch err {
		case domain.ErrUserExists:
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		case domain.ErrWeakPassword, domain.ErrBadRequest:
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Login handles POST /api/v1/auth/login.
//
// @Summary      Log in a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failed").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, authResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}
