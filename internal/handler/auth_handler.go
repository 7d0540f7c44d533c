package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/studyhub/studyhub-backend/internal/domain"
	"github.com/studyhub/studyhub-backend/internal/middleware"
	"github.com/studyhub/studyhub-backend/internal/service"
)

// AuthHandler handles signup, login, and session lifecycle requests
type AuthHandler struct {
	accountService *service.AccountService
	sessionService *service.SessionService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService *service.AccountService, sessionService *service.SessionService) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
		sessionService: sessionService,
	}
}

// SignupRequest represents the signup request body
type SignupRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email string `json:"email"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Points    int      `json:"points"`
	Completed []string `json:"completed"`
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.accountService.Signup(req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrEmailRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "email", Message: "Email is required"},
			})
		}
		if errors.Is(err, domain.ErrEmailTaken) {
			return NewConflictError(c, "Email already registered. Please login.")
		}
		log.Error().Err(err).Msg("Failed to create user")
		return NewInternalError(c, "Failed to create user")
	}

	session := h.sessionService.Create(user.ID)
	c.SetCookie(middleware.NewSessionCookie(session.Token, 0))

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/v1/auth/login. Login is by email only; passwords
// are out of scope.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	user, err := h.accountService.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "No user found with that email.")
		}
		log.Error().Err(err).Msg("Failed to look up user")
		return NewInternalError(c, "Failed to log in")
	}

	session := h.sessionService.Create(user.ID)
	c.SetCookie(middleware.NewSessionCookie(session.Token, 0))

	log.Info().Str("user_id", user.ID).Msg("User logged in")
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.SessionToken(c); token != "" {
		h.sessionService.Destroy(token)
	}
	c.SetCookie(middleware.NewSessionCookie("", -1))
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Login required")
	}

	user, err := h.accountService.FindByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load user")
		return NewInternalError(c, "Failed to load user")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Helper function to convert domain.User to UserResponse
func toUserResponse(user *domain.User) UserResponse {
	completed := user.Completed
	if completed == nil {
		completed = []string{}
	}
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Points:    user.Points,
		Completed: completed,
	}
}
