package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopcore/internal/clock"
)

// TokenLifetime is fixed; there is no refresh mechanism.
const TokenLifetime = 24 * time.Hour

var (
	ErrMalformed        = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrExpired          = errors.New("token expired")
)

// Claims is the decoded payload of a verified token. Subject is the string
// form of a user id.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService mints and verifies HS256-signed stateless identity tokens.
// The signing secret and the clock are injected so tests can use a fixed
// key and fabricate "25 hours later" without sleeping.
type TokenService struct {
	secret []byte
	clock  clock.Clock
}

func NewTokenService(secret []byte, clk clock.Clock) *TokenService {
	return &TokenService{secret: secret, clock: clk}
}

func (s *TokenService) Issue(subject string) (string, error) {
	now := s.clock.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
	})
	return tok.SignedString(s.secret)
}

// Verify checks signature then expiry and returns the decoded claims.
// A token whose expiry equals the current instant is already expired.
func (s *TokenService) Verify(tokenString string) (Claims, error) {
	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &rc,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Claims{}, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Claims{}, ErrInvalidSignature
	default:
		return Claims{}, ErrMalformed
	}
	if rc.Subject == "" || rc.IssuedAt == nil || rc.ExpiresAt == nil {
		return Claims{}, ErrMalformed
	}
	return Claims{
		Subject:   rc.Subject,
		IssuedAt:  rc.IssuedAt.Time,
		ExpiresAt: rc.ExpiresAt.Time,
	}, nil
}
