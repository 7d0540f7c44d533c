package service

import (
	"github.com/rs/zerolog/log"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

// ProgressService handles completion tracking and point awards
type ProgressService struct {
	userRepo     domain.UserRepository
	materialRepo domain.MaterialRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(userRepo domain.UserRepository, materialRepo domain.MaterialRepository) *ProgressService {
	return &ProgressService{userRepo: userRepo, materialRepo: materialRepo}
}

// ProgressSummary holds a user's progress for the dashboard
type ProgressSummary struct {
	CompletedCount int
	Points         int
	TotalMaterials int
}

// CompleteMaterial records a first-time completion and awards points. A
// repeat completion is a no-op and returns the user unchanged. The material
// id is not checked against the catalog; unknown ids are accepted.
func (s *ProgressService) CompleteMaterial(userID, materialID string) (*domain.User, error) {
	user, err := s.userRepo.RecordCompletion(userID, materialID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", userID).
		Str("material_id", materialID).
		Int("points", user.Points).
		Msg("Material completion recorded")

	return user, nil
}

// Summary returns the user's completion count, points, and the catalog size
func (s *ProgressService) Summary(userID string) (*ProgressSummary, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.GetAll()
	if err != nil {
		return nil, err
	}

	return &ProgressSummary{
		CompletedCount: len(user.Completed),
		Points:         user.Points,
		TotalMaterials: len(materials),
	}, nil
}
