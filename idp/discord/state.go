package discord

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const stateTTL = 10 * time.Minute

// ErrInvalidState indicates the OAuth2 state parameter failed validation
var ErrInvalidState = errors.New("invalid oauth2 state")

// StateSigner issues and verifies the OAuth2 state parameter as a
// short-lived HS256 token, so the callback can reject requests that did
// not originate from our own login redirect.
type StateSigner struct {
	secret []byte
}

// NewStateSigner creates a signer with the given secret
func NewStateSigner(secret []byte) *StateSigner {
	return &StateSigner{secret: secret}
}

// Issue signs a fresh state token
func (s *StateSigner) Issue() (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("state secret is not configured")
	}
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks a state token returned by the identity provider callback
func (s *StateSigner) Verify(state string) error {
	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidState
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidState
	}
	return nil
}
