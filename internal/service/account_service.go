package service

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

// AccountService handles signup and user lookup business logic
type AccountService struct {
	userRepo domain.UserRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(userRepo domain.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// Signup creates a new user with zero points and an empty completion list.
// Email uniqueness is enforced on the full string.
func (s *AccountService) Signup(name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	user, err := s.userRepo.Create(&domain.User{
		Name:      name,
		Email:     email,
		Points:    0,
		Completed: []string{},
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("User created")
	return user, nil
}

// FindByEmail retrieves a user by email (login flow)
func (s *AccountService) FindByEmail(email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(email)
}

// FindByID retrieves a user by id (session resolution)
func (s *AccountService) FindByID(id string) (*domain.User, error) {
	return s.userRepo.GetByID(id)
}
