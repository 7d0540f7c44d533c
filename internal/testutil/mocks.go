package testutil

import (
	"strings"

	"github.com/google/uuid"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users []*domain.User

	// GetByIDErr, when set, is returned from GetByID regardless of input
	GetByIDErr error
	// CreateErr, when set, is returned from Create regardless of input
	CreateErr error
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// AddUser seeds an existing user
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users = append(m.Users, user)
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id string) (*domain.User, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	for _, u := range m.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a new user, enforcing email uniqueness
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	for _, u := range m.Users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	created := *user
	created.ID = uuid.NewString()
	if created.Completed == nil {
		created.Completed = []string{}
	}
	m.Users = append(m.Users, &created)
	return &created, nil
}

// RecordCompletion marks a material completed, idempotently
func (m *MockUserRepository) RecordCompletion(userID, materialID string) (*domain.User, error) {
	for _, u := range m.Users {
		if u.ID == userID {
			if !u.HasCompleted(materialID) {
				u.Completed = append(u.Completed, materialID)
				u.Points += domain.CompletionAward
			}
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// MockMaterialRepository is a mock implementation of domain.MaterialRepository
type MockMaterialRepository struct {
	Materials []*domain.Material
}

// NewMockMaterialRepository creates a new MockMaterialRepository
func NewMockMaterialRepository(materials ...*domain.Material) *MockMaterialRepository {
	return &MockMaterialRepository{Materials: materials}
}

// GetAll returns every material in order
func (m *MockMaterialRepository) GetAll() ([]*domain.Material, error) {
	return m.Materials, nil
}

// Search returns materials matching the query case-insensitively
func (m *MockMaterialRepository) Search(query string) ([]*domain.Material, error) {
	q := strings.ToLower(query)
	var out []*domain.Material
	for _, mat := range m.Materials {
		if q == "" ||
			strings.Contains(strings.ToLower(mat.Title), q) ||
			strings.Contains(strings.ToLower(mat.Content), q) ||
			strings.Contains(strings.ToLower(mat.Type), q) {
			out = append(out, mat)
		}
	}
	return out, nil
}

// GetByID retrieves a material by exact id
func (m *MockMaterialRepository) GetByID(id string) (*domain.Material, error) {
	for _, mat := range m.Materials {
		if mat.ID == id {
			return mat, nil
		}
	}
	return nil, domain.ErrMaterialNotFound
}
