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

// MaterialHandler handles catalog and completion HTTP requests
type MaterialHandler struct {
	catalogService  *service.CatalogService
	progressService *service.ProgressService
}

// NewMaterialHandler creates a new MaterialHandler
func NewMaterialHandler(catalogService *service.CatalogService, progressService *service.ProgressService) *MaterialHandler {
	return &MaterialHandler{
		catalogService:  catalogService,
		progressService: progressService,
	}
}

// MaterialResponse represents a material in API responses
type MaterialResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// ListMaterials handles GET /api/v1/materials?q=
func (h *MaterialHandler) ListMaterials(c echo.Context) error {
	query := c.QueryParam("q")

	materials, err := h.catalogService.ListMaterials(query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Failed to list materials")
		return NewInternalError(c, "Failed to list materials")
	}

	response := make([]MaterialResponse, len(materials))
	for i, m := range materials {
		response[i] = toMaterialResponse(m)
	}
	return c.JSON(http.StatusOK, response)
}

// GetMaterial handles GET /api/v1/materials/:id
func (h *MaterialHandler) GetMaterial(c echo.Context) error {
	id := c.Param("id")

	material, err := h.catalogService.GetMaterial(id)
	if err != nil {
		if errors.Is(err, domain.ErrMaterialNotFound) {
			return NewNotFoundError(c, "Material not found.")
		}
		log.Error().Err(err).Str("material_id", id).Msg("Failed to get material")
		return NewInternalError(c, "Failed to get material")
	}

	return c.JSON(http.StatusOK, toMaterialResponse(material))
}

// CompleteMaterial handles POST /api/v1/materials/:id/complete
func (h *MaterialHandler) CompleteMaterial(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Login required")
	}

	materialID := c.Param("id")

	user, err := h.progressService.CompleteMaterial(userID, materialID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("user_id", userID).Str("material_id", materialID).Msg("Failed to record completion")
		return NewInternalError(c, "Failed to record completion")
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Helper function to convert domain.Material to MaterialResponse
func toMaterialResponse(m *domain.Material) MaterialResponse {
	return MaterialResponse{
		ID:      m.ID,
		Title:   m.Title,
		Content: m.Content,
		Type:    m.Type,
	}
}
