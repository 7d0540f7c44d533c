package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/studyhub/studyhub-backend/internal/domain"
)

const (
	// DefaultSessionTTL is how long a session stays valid without renewal
	DefaultSessionTTL = 24 * time.Hour
	// sessionCleanupInterval is how often expired sessions are swept
	sessionCleanupInterval = 5 * time.Minute
)

// SessionService maps opaque tokens to user ids. Sessions live in memory
// only; they are never written to the dataset. A background goroutine sweeps
// expired sessions until Close is called.
type SessionService struct {
	sessions map[string]*domain.Session
	mu       sync.RWMutex
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSessionService creates a SessionService with the default TTL
func NewSessionService() *SessionService {
	return NewSessionServiceWithTTL(DefaultSessionTTL)
}

// NewSessionServiceWithTTL creates a SessionService with a custom TTL
func NewSessionServiceWithTTL(ttl time.Duration) *SessionService {
	s := &SessionService{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go s.cleanup()
	return s
}

// Create issues a new session token for the user
func (s *SessionService) Create(userID string) *domain.Session {
	now := time.Now()
	session := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	log.Debug().Str("user_id", userID).Msg("Session created")
	return session
}

// Resolve returns the user id for a token, or domain.ErrSessionNotFound if
// the token is unknown or expired.
func (s *SessionService) Resolve(token string) (string, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || session.Expired(time.Now()) {
		return "", domain.ErrSessionNotFound
	}
	return session.UserID, nil
}

// Destroy removes a session. Destroying an unknown token is not an error.
func (s *SessionService) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Close stops the cleanup goroutine
func (s *SessionService) Close() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// cleanup periodically removes expired sessions
func (s *SessionService) cleanup() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for token, session := range s.sessions {
				if session.Expired(now) {
					delete(s.sessions, token)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}
