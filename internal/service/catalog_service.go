package service

import (
	"strings"

	"github.com/studyhub/studyhub-backend/internal/domain"
)

// CatalogService handles read-only material queries
type CatalogService struct {
	materialRepo domain.MaterialRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(materialRepo domain.MaterialRepository) *CatalogService {
	return &CatalogService{materialRepo: materialRepo}
}

// ListMaterials returns all materials, or those matching the query
// case-insensitively across title, content, and type when one is given.
func (s *CatalogService) ListMaterials(query string) ([]*domain.Material, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.materialRepo.GetAll()
	}
	return s.materialRepo.Search(query)
}

// GetMaterial retrieves a material by id
func (s *CatalogService) GetMaterial(id string) (*domain.Material, error) {
	return s.materialRepo.GetByID(id)
}
