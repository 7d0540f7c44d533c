package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/studyhub/studyhub-backend/internal/middleware"
	"github.com/studyhub/studyhub-backend/internal/service"
)

// TutorHandler handles the placeholder AI tutor requests
type TutorHandler struct {
	tutorService *service.TutorService
}

// NewTutorHandler creates a new TutorHandler
func NewTutorHandler(tutorService *service.TutorService) *TutorHandler {
	return &TutorHandler{tutorService: tutorService}
}

// ChatRequest represents the tutor chat request body
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the tutor chat response
type ChatResponse struct {
	Response string `json:"response"`
}

// GrammarRequest represents the grammar correction request body
type GrammarRequest struct {
	Text string `json:"text"`
}

// GrammarResponse represents the grammar correction response
type GrammarResponse struct {
	Corrected   string                      `json:"corrected"`
	Suggestions []service.GrammarSuggestion `json:"suggestions"`
}

// Chat handles POST /api/v1/ai/chat
func (h *TutorHandler) Chat(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Login required")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	return c.JSON(http.StatusOK, ChatResponse{
		Response: h.tutorService.Chat(req.Message),
	})
}

// CorrectGrammar handles POST /api/v1/ai/grammar
func (h *TutorHandler) CorrectGrammar(c echo.Context) error {
	if middleware.GetUserID(c) == "" {
		return NewUnauthorizedError(c, "Login required")
	}

	var req GrammarRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	corrected, suggestions := h.tutorService.CorrectGrammar(req.Text)
	return c.JSON(http.StatusOK, GrammarResponse{
		Corrected:   corrected,
		Suggestions: suggestions,
	})
}
