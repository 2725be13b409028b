package service

import (
	"context"
	"errors"

	"taskboard/internal/apperr"
	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

var errInvalidCredentials = apperr.Unauthorized("invalid credentials")

type Registration struct {
	Name     string
	Surname  *string
	Email    string
	Password string
}

type AuthService struct {
	users      repository.UserRepositoryInterface
	tokens     *auth.TokenService
	bcryptCost int
}

func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.TokenService, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register stores the user together with its credential and returns a fresh
// token pair for it.
func (s *AuthService) Register(ctx context.Context, reg Registration) (auth.TokenPair, error) {
	hash, salt, err := auth.HashPassword(reg.Password, s.bcryptCost)
	if err != nil {
		return auth.TokenPair{}, apperr.Internal(err)
	}

	user := &model.User{Name: reg.Name, Surname: reg.Surname, Email: reg.Email}
	credential := &model.Credential{PassHash: hash, Salt: salt}
	if err := s.users.CreateWithCredential(ctx, user, credential); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return auth.TokenPair{}, apperr.Conflict("user with email: %s already exists", reg.Email)
		}
		return auth.TokenPair{}, apperr.Internal(err)
	}

	return s.issue(user.ID)
}

// Login answers unknown emails and wrong passwords with the same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.TokenPair{}, errInvalidCredentials
		}
		return auth.TokenPair{}, apperr.Internal(err)
	}

	if err := auth.ComparePassword(user.PassHash, password); err != nil {
		return auth.TokenPair{}, errInvalidCredentials
	}

	return s.issue(user.ID)
}

// Refresh exchanges a valid refresh token for a brand-new pair. Old refresh
// tokens stay valid until they expire.
func (s *AuthService) Refresh(refreshToken string) (auth.TokenPair, error) {
	if refreshToken == "" {
		return auth.TokenPair{}, apperr.Unauthorized("refresh token is not provided")
	}
	userID, err := s.tokens.Validate(refreshToken, auth.RefreshToken)
	if err != nil {
		return auth.TokenPair{}, apperr.Unauthorized("invalid refresh token")
	}
	return s.issue(userID)
}

// Authenticate resolves an access token to its subject.
func (s *AuthService) Authenticate(accessToken string) (uint, error) {
	userID, err := s.tokens.Validate(accessToken, auth.AccessToken)
	if err != nil {
		return 0, apperr.Unauthorized("invalid or expired token")
	}
	return userID, nil
}

func (s *AuthService) issue(userID uint) (auth.TokenPair, error) {
	pair, err := s.tokens.IssueTokenPair(userID)
	if err != nil {
		return auth.TokenPair{}, apperr.Internal(err)
	}
	return pair, nil
}
