package jsonfile

import (
	"github.com/google/uuid"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

// UserRepository implements domain.UserRepository over the flat-file store
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	var user *domain.User
	err := r.store.View(func(data *domain.Dataset) error {
		found := data.FindUserByID(id)
		if found == nil {
			return domain.ErrUserNotFound
		}
		user = cloneUser(found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email (full-string, case-sensitive match)
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	var user *domain.User
	err := r.store.View(func(data *domain.Dataset) error {
		found := data.FindUserByEmail(email)
		if found == nil {
			return domain.ErrUserNotFound
		}
		user = cloneUser(found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create appends a new user to the dataset and persists it. Returns
// domain.ErrEmailTaken if the email is already registered; the uniqueness
// check and the insert run under the same write lock.
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	created := cloneUser(user)
	created.ID = uuid.NewString()
	if created.Completed == nil {
		created.Completed = []string{}
	}

	err := r.store.Update(func(data *domain.Dataset) error {
		if data.FindUserByEmail(created.Email) != nil {
			return domain.ErrEmailTaken
		}
		data.Users = append(data.Users, cloneUser(created))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RecordCompletion marks the material completed for the user and awards
// points, idempotently. A repeat completion changes nothing and skips the
// save entirely. The material id is not validated against the catalog.
func (r *UserRepository) RecordCompletion(userID, materialID string) (*domain.User, error) {
	var user *domain.User
	err := r.store.Update(func(data *domain.Dataset) error {
		found := data.FindUserByID(userID)
		if found == nil {
			return domain.ErrUserNotFound
		}
		if found.HasCompleted(materialID) {
			user = cloneUser(found)
			return errSkipSave
		}
		found.Completed = append(found.Completed, materialID)
		found.Points += domain.CompletionAward
		user = cloneUser(found)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// cloneUser copies a user so callers never hold a pointer into the dataset
func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Completed = append([]string{}, u.Completed...)
	return &c
}
