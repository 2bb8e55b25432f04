package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema_admin/model"

	"github.com/golang-jwt/jwt/v5"
)

// Manager cấp JWT cho client và ánh xạ về phiên đã lưu
type Manager struct {
	Store  Store
	Secret []byte
	TTL    time.Duration
	// Retain giữ phiên hết hạn thêm một khoảng để còn refresh được
	Retain time.Duration
	Now    func() time.Time
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		Store:  store,
		Secret: []byte(secret),
		TTL:    ttl,
		Retain: 24 * time.Hour,
		Now:    time.Now,
	}
}

func (m *Manager) save(ctx context.Context, s *Session) error {
	return m.Store.Save(ctx, s, m.TTL+m.Retain)
}

func (m *Manager) sign(s *Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      s.ID,
		"username": s.Username,
		"iat":      m.Now().Unix(),
		"exp":      s.ExpiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.Secret)
}

// Start tạo phiên mới sau khi backend xác thực thành công
func (m *Manager) Start(ctx context.Context, username string, tokens model.TokenData) (*Session, string, error) {
	now := m.Now()
	s := NewSession(now)
	if err := s.Authenticate(username, tokens, now, m.TTL); err != nil {
		return nil, "", err
	}
	if err := m.save(ctx, s); err != nil {
		return nil, "", err
	}
	signed, err := m.sign(s)
	if err != nil {
		return nil, "", err
	}
	return s, signed, nil
}

func (m *Manager) parse(tokenString string, allowExpired bool) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.Now),
	}
	if allowExpired {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrSessionExpired
		}
		return "", fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNotAuthenticated
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", ErrNotAuthenticated
	}
	return sid, nil
}

// Resolve trả về phiên còn hiệu lực của token
func (m *Manager) Resolve(ctx context.Context, tokenString string) (*Session, error) {
	sid, err := m.parse(tokenString, false)
	if err != nil {
		return nil, err
	}
	s, err := m.Store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := s.Check(m.Now()); err != nil {
		if errors.Is(err, ErrSessionExpired) {
			_ = m.save(ctx, s)
		}
		return nil, err
	}
	return s, nil
}

// ResolveForRefresh chấp nhận cả phiên đã hết hạn
func (m *Manager) ResolveForRefresh(ctx context.Context, tokenString string) (*Session, error) {
	sid, err := m.parse(tokenString, true)
	if err != nil {
		return nil, err
	}
	s, err := m.Store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	if err := s.Check(m.Now()); err != nil && !errors.Is(err, ErrSessionExpired) {
		return nil, err
	}
	return s, nil
}

func (m *Manager) Refresh(ctx context.Context, s *Session, tokens model.TokenData) (string, error) {
	if err := s.Refresh(tokens, m.Now(), m.TTL); err != nil {
		return "", err
	}
	if err := m.save(ctx, s); err != nil {
		return "", err
	}
	return m.sign(s)
}

// End đăng xuất. Phiên được giữ lại ở trạng thái logged_out tới khi hết hạn lưu.
func (m *Manager) End(ctx context.Context, s *Session) error {
	s.Logout()
	return m.save(ctx, s)
}
