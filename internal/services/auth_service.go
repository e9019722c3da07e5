package services

import (
	"errors"
	"strconv"

	"shopcore/internal/auth"
	"shopcore/internal/domain"
	"shopcore/internal/repos"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *auth.TokenService
}

func NewAuthService(users *repos.UserRepo, tokens *auth.TokenService) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

func (s *AuthService) Register(username, email, password string) (*domain.User, string, error) {
	if existing, _ := s.Users.ByEmail(email); existing != nil {
		return nil, "", ErrEmailTaken
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	u, err := s.Users.Create(username, email, hash)
	if err != nil {
		// The unique index is the backstop for a register race on one email.
		return nil, "", ErrEmailTaken
	}
	token, err := s.Tokens.Issue(strconv.FormatInt(u.ID, 10))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login collapses every failure into ErrBadCreds so the response never
// reveals whether the email exists.
func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if !auth.VerifyPassword(u.Hash, password) {
		return nil, "", ErrBadCreds
	}
	token, err := s.Tokens.Issue(strconv.FormatInt(u.ID, 10))
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Resolve maps a bearer token to the authenticated user id.
func (s *AuthService) Resolve(token string) (int64, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, auth.ErrMalformed
	}
	return id, nil
}
