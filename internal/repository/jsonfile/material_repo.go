package jsonfile

import (
	"strings"

	"github.com/studyhub/studyhub-backend/internal/domain"
)

// MaterialRepository implements domain.MaterialRepository over the flat-file store
type MaterialRepository struct {
	store *Store
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(store *Store) *MaterialRepository {
	return &MaterialRepository{store: store}
}

// GetAll returns every material in persisted order
func (r *MaterialRepository) GetAll() ([]*domain.Material, error) {
	return r.Search("")
}

// Search returns materials whose title, content, or type contains the query,
// case-insensitively. An empty query matches everything. Order is preserved
// from the dataset; there is no ranking.
func (r *MaterialRepository) Search(query string) ([]*domain.Material, error) {
	q := strings.ToLower(query)
	var materials []*domain.Material
	err := r.store.View(func(data *domain.Dataset) error {
		materials = make([]*domain.Material, 0, len(data.Materials))
		for _, m := range data.Materials {
			if q == "" || materialMatches(m, q) {
				copied := *m
				materials = append(materials, &copied)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return materials, nil
}

// GetByID retrieves a material by exact id match
func (r *MaterialRepository) GetByID(id string) (*domain.Material, error) {
	var material *domain.Material
	err := r.store.View(func(data *domain.Dataset) error {
		found := data.FindMaterial(id)
		if found == nil {
			return domain.ErrMaterialNotFound
		}
		copied := *found
		material = &copied
		return nil
	})
	if err != nil {
		return nil, err
	}
	return material, nil
}

func materialMatches(m *domain.Material, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(m.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(m.Content), loweredQuery) ||
		strings.Contains(strings.ToLower(m.Type), loweredQuery)
}
