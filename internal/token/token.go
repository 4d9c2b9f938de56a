package token

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"craftlink/pkg/domain"
)

// DefaultTTL is the token lifetime used when config does not override it.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken is the single verification failure surfaced to callers.
// Forged, malformed, and expired tokens are deliberately indistinguishable
// through this interface; the distinction is only logged.
var ErrInvalidToken = errors.New("Invalid or expired token")

// Config configures token signing and verification.
type Config struct {
	Secret string
	TTL    time.Duration
}

// Claims is the token payload: subject id, role, expiry.
type Claims struct {
	UserID   uint        `json:"user_id"`
	UserType domain.Role `json:"user_type"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256 tokens with a process-wide secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a codec from config. The secret is required.
func NewCodec(cfg Config) (*Codec, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("token secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(cfg.Secret), ttl: ttl}, nil
}

// Issue signs a token carrying the subject id and role.
func (c *Codec) Issue(userID uint, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   userID,
		UserType: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry and returns the claims.
// Every failure collapses to ErrInvalidToken.
func (c *Codec) Verify(raw string) (Claims, error) {
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		slog.Debug("token rejected", "err", err)
		return Claims{}, ErrInvalidToken
	}
	if _, ok := domain.ParseRole(string(claims.UserType)); !ok {
		slog.Debug("token rejected", "err", "unknown user_type")
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
