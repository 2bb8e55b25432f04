package auth

import (
	"errors"
	"time"

	"cinema_admin/model"

	"github.com/google/uuid"
)

type State string

const (
	StateInit          State = "init"
	StateAuthenticated State = "authenticated"
	StateExpired       State = "expired"
	StateLoggedOut     State = "logged_out"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrNotAuthenticated  = errors.New("session is not authenticated")
	ErrSessionExpired    = errors.New("session expired")
	ErrLoggedOut         = errors.New("session logged out")
	ErrInvalidTransition = errors.New("invalid session transition")
)

// Session giữ token backend của một người dùng back-office.
// init -> authenticated -> expired | logged_out; expired có thể refresh lại.
type Session struct {
	ID           string    `json:"id"`
	State        State     `json:"state"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	CreatedAt    time.Time `json:"createdAt"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		State:     StateInit,
		CreatedAt: now,
	}
}

func (s *Session) Authenticate(username string, tokens model.TokenData, now time.Time, ttl time.Duration) error {
	if s.State != StateInit {
		return ErrInvalidTransition
	}
	s.Username = username
	s.AccessToken = tokens.AccessToken
	s.RefreshToken = tokens.RefreshToken
	s.State = StateAuthenticated
	s.ExpiresAt = now.Add(ttl)
	return nil
}

func (s *Session) Refresh(tokens model.TokenData, now time.Time, ttl time.Duration) error {
	if s.State != StateAuthenticated && s.State != StateExpired {
		return ErrInvalidTransition
	}
	s.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		s.RefreshToken = tokens.RefreshToken
	}
	s.State = StateAuthenticated
	s.ExpiresAt = now.Add(ttl)
	return nil
}

// Check chuyển phiên sang expired khi quá hạn
func (s *Session) Check(now time.Time) error {
	switch s.State {
	case StateAuthenticated:
		if !now.Before(s.ExpiresAt) {
			s.State = StateExpired
			return ErrSessionExpired
		}
		return nil
	case StateExpired:
		return ErrSessionExpired
	case StateLoggedOut:
		return ErrLoggedOut
	default:
		return ErrNotAuthenticated
	}
}

func (s *Session) Logout() {
	s.State = StateLoggedOut
	s.AccessToken = ""
	s.RefreshToken = ""
}
