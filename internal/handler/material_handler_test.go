package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/studyhub/studyhub-backend/internal/domain"
	"github.com/studyhub/studyhub-backend/internal/service"
	"github.com/studyhub/studyhub-backend/internal/testutil"
)

func newMaterialFixture() (*MaterialHandler, *testutil.MockUserRepository) {
	userRepo := testutil.NewMockUserRepository()
	materialRepo := testutil.NewMockMaterialRepository(
		&domain.Material{ID: "m1", Title: "Algebra Basics", Content: "Linear equations", Type: "math"},
		&domain.Material{ID: "m2", Title: "French Revolution", Content: "1789", Type: "history"},
	)
	catalogService := service.NewCatalogService(materialRepo)
	progressService := service.NewProgressService(userRepo, materialRepo)
	return NewMaterialHandler(catalogService, progressService), userRepo
}

func TestListMaterials_All(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/materials", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListMaterials(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response []MaterialResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 materials, got %d", len(response))
	}
}

func TestListMaterials_Search(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/materials?q=algebra", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListMaterials(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []MaterialResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 || response[0].ID != "m1" {
		t.Errorf("Expected [m1], got %v", response)
	}
}

func TestGetMaterial_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/materials/m2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m2")

	if err := handler.GetMaterial(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response MaterialResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Title != "French Revolution" {
		t.Errorf("Expected 'French Revolution', got %s", response.Title)
	}
}

func TestGetMaterial_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/materials/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	if err := handler.GetMaterial(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestCompleteMaterial_Success(t *testing.T) {
	e := echo.New()
	handler, userRepo := newMaterialFixture()
	userRepo.AddUser(&domain.User{ID: "u1", Name: "Ada", Email: "ada@x.com", Completed: []string{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/m1/complete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	setupSessionContext(c, "u1")

	if err := handler.CompleteMaterial(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Points != 10 {
		t.Errorf("Expected 10 points, got %d", response.Points)
	}
	if len(response.Completed) != 1 || response.Completed[0] != "m1" {
		t.Errorf("Expected completed [m1], got %v", response.Completed)
	}
}

func TestCompleteMaterial_Anonymous(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/m1/complete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := handler.CompleteMaterial(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestCompleteMaterial_UnknownUser(t *testing.T) {
	e := echo.New()
	handler, _ := newMaterialFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/materials/m1/complete", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")
	setupSessionContext(c, "ghost")

	if err := handler.CompleteMaterial(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
