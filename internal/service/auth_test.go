package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/apperr"
	"taskboard/internal/auth"
	"taskboard/internal/database/dbtest"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*service.AuthService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	users := repository.NewUserRepository(dbtest.New(t))
	return service.NewAuthService(users, tokens, bcrypt.MinCost), tokens
}

func register(t *testing.T, svc *service.AuthService, email string) auth.TokenPair {
	t.Helper()
	pair, err := svc.Register(context.Background(), service.Registration{
		Name:     "John",
		Email:    email,
		Password: "secret",
	})
	require.NoError(t, err)
	return pair
}

func TestAuthService_RegisterThenLoginSameSubject(t *testing.T) {
	svc, tokens := newAuthService(t)
	registered := register(t, svc, "a@x.io")

	loggedIn, err := svc.Login(context.Background(), "a@x.io", "secret")
	require.NoError(t, err)

	regID, err := tokens.Validate(registered.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	loginID, err := tokens.Validate(loggedIn.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, regID, loginID)
	assert.NotEmpty(t, loggedIn.RefreshToken)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "dup@x.io")

	_, err := svc.Register(context.Background(), service.Registration{Name: "Jane", Email: "dup@x.io", Password: "other"})

	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Contains(t, err.Error(), "dup@x.io")
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	register(t, svc, "a@x.io")

	_, wrongPassword := svc.Login(context.Background(), "a@x.io", "nope")
	_, unknownEmail := svc.Login(context.Background(), "ghost@x.io", "secret")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, apperr.Is(wrongPassword, apperr.KindUnauthorized))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_Refresh(t *testing.T) {
	svc, tokens := newAuthService(t)
	pair := register(t, svc, "a@x.io")

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	userID, err := tokens.Validate(refreshed.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	want, _ := tokens.Validate(pair.AccessToken, auth.AccessToken)
	assert.Equal(t, want, userID)
}

func TestAuthService_RefreshRejects(t *testing.T) {
	svc, _ := newAuthService(t)
	pair := register(t, svc, "a@x.io")

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not.a.jwt"},
		{"access token", pair.AccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Refresh(tt.token)
			assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
		})
	}
}

func TestAuthService_AuthenticateRejectsRefreshToken(t *testing.T) {
	svc, _ := newAuthService(t)
	pair := register(t, svc, "a@x.io")

	_, err := svc.Authenticate(pair.RefreshToken)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))

	id, err := svc.Authenticate(pair.AccessToken)
	require.NoError(t, err)
	assert.NotZero(t, id)
}

type brokenUsers struct {
	repository.UserRepositoryInterface
}

func (brokenUsers) FindByEmail(context.Context, string) (*model.UserWithCredential, error) {
	return nil, errors.New("connection reset")
}

func TestAuthService_LoginStorageFailureIsInternal(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Minute, time.Hour)
	svc := service.NewAuthService(brokenUsers{}, tokens, bcrypt.MinCost)

	_, err := svc.Login(context.Background(), "a@x.io", "secret")

	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.Equal(t, "something went wrong", apperr.From(err).Message)
}
