package jsonfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

func seedMaterials(t *testing.T, store *Store) {
	t.Helper()
	err := store.Update(func(data *domain.Dataset) error {
		data.Materials = []*domain.Material{
			{ID: "m1", Title: "Algebra Basics", Content: "Solving linear equations", Type: "math"},
			{ID: "m2", Title: "World War II", Content: "The war in Europe", Type: "history"},
			{ID: "m3", Title: "Advanced Calculus", Content: "Covers algebra review too", Type: "math"},
		}
		return nil
	})
	require.NoError(t, err)
}

func TestMaterialRepository_GetAllPreservesOrder(t *testing.T) {
	store, _ := newTestStore(t)
	seedMaterials(t, store)
	repo := NewMaterialRepository(store)

	materials, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, materials, 3)
	assert.Equal(t, "m1", materials[0].ID)
	assert.Equal(t, "m2", materials[1].ID)
	assert.Equal(t, "m3", materials[2].ID)
}

func TestMaterialRepository_SearchCaseInsensitive(t *testing.T) {
	store, _ := newTestStore(t)
	seedMaterials(t, store)
	repo := NewMaterialRepository(store)

	// Matches title on m1 and content on m3
	materials, err := repo.Search("ALGEBRA")
	require.NoError(t, err)
	require.Len(t, materials, 2)
	assert.Equal(t, "m1", materials[0].ID)
	assert.Equal(t, "m3", materials[1].ID)

	// Matches type
	materials, err = repo.Search("history")
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "m2", materials[0].ID)

	materials, err = repo.Search("no such thing anywhere")
	require.NoError(t, err)
	assert.Empty(t, materials)
}

func TestMaterialRepository_GetByID(t *testing.T) {
	store, _ := newTestStore(t)
	seedMaterials(t, store)
	repo := NewMaterialRepository(store)

	material, err := repo.GetByID("m2")
	require.NoError(t, err)
	assert.Equal(t, "World War II", material.Title)

	_, err = repo.GetByID("nonexistent-id")
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}
