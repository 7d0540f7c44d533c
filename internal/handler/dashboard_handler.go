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

// DashboardHandler handles the dashboard summary request
type DashboardHandler struct {
	accountService  *service.AccountService
	progressService *service.ProgressService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(accountService *service.AccountService, progressService *service.ProgressService) *DashboardHandler {
	return &DashboardHandler{
		accountService:  accountService,
		progressService: progressService,
	}
}

// DashboardResponse represents the dashboard summary
type DashboardResponse struct {
	User           UserResponse `json:"user"`
	CompletedCount int          `json:"completedCount"`
	TotalMaterials int          `json:"totalMaterials"`
	Points         int          `json:"points"`
}

// GetSummary handles GET /api/v1/dashboard
func (h *DashboardHandler) GetSummary(c echo.Context) error {
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
		return NewInternalError(c, "Failed to load dashboard")
	}

	summary, err := h.progressService.Summary(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to build progress summary")
		return NewInternalError(c, "Failed to load dashboard")
	}

	return c.JSON(http.StatusOK, DashboardResponse{
		User:           toUserResponse(user),
		CompletedCount: summary.CompletedCount,
		TotalMaterials: summary.TotalMaterials,
		Points:         summary.Points,
	})
}
