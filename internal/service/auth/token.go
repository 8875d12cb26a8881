package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"artisty/internal/domain"
)

// issueSession creates a session row with a fresh random token, retrying on
// the (vanishingly rare) token collision.
func (s *Service) issueSession(ctx context.Context, userID string) (string, error) {
	expiresAt := time.Now().UTC().Add(s.ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = s.sessions.Create(ctx, domain.Session{
			Token:     token,
			UserID:    userID,
			ExpiresAt: expiresAt,
			CreatedAt: time.Now().UTC(),
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("session token collision")
}

// NewState returns a random value to bind the OAuth redirect round-trip.
func NewState() (string, error) {
	return randomToken()
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
