package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/studyhub/studyhub-backend/internal/service"
)

func TestChat_Success(t *testing.T) {
	e := echo.New()
	handler := NewTutorHandler(service.NewTutorService())

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/ai/chat", `{"message":"what is algebra?"}`)
	setupSessionContext(c, "u1")

	if err := handler.Chat(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !strings.Contains(response.Response, "what is algebra?") {
		t.Errorf("Expected message echoed in reply, got %q", response.Response)
	}
}

func TestChat_Anonymous(t *testing.T) {
	e := echo.New()
	handler := NewTutorHandler(service.NewTutorService())

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/ai/chat", `{"message":"hi"}`)

	if err := handler.Chat(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestCorrectGrammar_Success(t *testing.T) {
	e := echo.New()
	handler := NewTutorHandler(service.NewTutorService())

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/ai/grammar", `{"text":"i  went   home"}`)
	setupSessionContext(c, "u1")

	if err := handler.CorrectGrammar(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response GrammarResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Corrected != "I went home" {
		t.Errorf("Expected 'I went home', got %q", response.Corrected)
	}
	if len(response.Suggestions) != 1 {
		t.Errorf("Expected 1 suggestion, got %d", len(response.Suggestions))
	}
}

func TestCorrectGrammar_Anonymous(t *testing.T) {
	e := echo.New()
	handler := NewTutorHandler(service.NewTutorService())

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/ai/grammar", `{"text":"hi"}`)

	if err := handler.CorrectGrammar(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}
