package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithCredential(ctx context.Context, user *model.User, credential *model.Credential) error {
	args := m.Called(ctx, user, credential)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.UserWithCredential, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.UserWithCredential), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, fields)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func setupTest() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockUserRepository)

	tokens := auth.NewTokenService("test-secret", 15*time.Minute, 7*24*time.Hour)
	authService := service.NewAuthService(mockRepo, tokens, bcrypt.MinCost)
	authHandler := handler.NewAuthHandler(authService, tokens, true)
	userHandler := handler.NewUserHandler(service.NewUserService(mockRepo))

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/refresh", authHandler.Refresh)

	users := r.Group("/users/:userId")
	users.Use(middleware.JWTAuthMiddleware(authService), middleware.OwnershipGuard())
	users.GET("", userHandler.Get)
	users.PUT("", userHandler.Update)
	users.DELETE("", userHandler.Delete)

	return r, mockRepo
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func refreshCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range resp.Result().Cookies() {
		if c.Name == "refresh_token" {
			return c
		}
	}
	return nil
}

func TestRegister_Success(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.AnythingOfType("*model.User"), mock.AnythingOfType("*model.Credential")).Return(nil)

	resp := postJSON(router, "/auth/register", handler.RegisterRequest{
		Name:     "Silvio",
		Email:    "silvio@mail.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.NotEmpty(t, response.AccessToken)

	cookie := refreshCookie(resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/auth", cookie.Path)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)

	mockRepo.AssertExpectations(t)
}

func TestRegister_StoresHashNotPassword(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything,
		mock.MatchedBy(func(u *model.User) bool { return u.Email == "silvio@mail.com" && u.Name == "Silvio" }),
		mock.MatchedBy(func(c *model.Credential) bool {
			return c.PassHash != "password123" &&
				bcrypt.CompareHashAndPassword([]byte(c.PassHash), []byte("password123")) == nil &&
				c.Salt == c.PassHash[:29]
		}),
	).Return(nil)

	resp := postJSON(router, "/auth/register", handler.RegisterRequest{
		Name:     "Silvio",
		Email:    "silvio@mail.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	resp := postJSON(router, "/auth/register", handler.RegisterRequest{
		Name:     "Silvio",
		Email:    "existing@mail.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, "user with email: existing@mail.com already exists", response["error"])
	assert.Equal(t, "conflict", response["kind"])
	assert.Nil(t, refreshCookie(resp))
}

func TestRegister_InvalidInput(t *testing.T) {
	router, mockRepo := setupTest()

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"bad email", handler.RegisterRequest{Name: "Silvio", Email: "not-an-email", Password: "p"}, "email must be a valid email"},
		{"short name", handler.RegisterRequest{Name: "S", Email: "s@mail.com", Password: "p"}, "name must be at least 2 characters long"},
		{"missing password", handler.RegisterRequest{Name: "Silvio", Email: "s@mail.com"}, "password is required"},
		{"not json", "{", "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(router, "/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.message)
		})
	}

	mockRepo.AssertNotCalled(t, "CreateWithCredential", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	router, mockRepo := setupTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", mock.Anything, "silvio@mail.com").Return(&model.UserWithCredential{
		User:     model.User{ID: 3, Name: "Silvio", Email: "silvio@mail.com"},
		PassHash: string(hash),
		Salt:     string(hash[:29]),
	}, nil)

	resp := postJSON(router, "/auth/login", handler.LoginRequest{Email: "silvio@mail.com", Password: "password123"})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotNil(t, refreshCookie(resp))
	mockRepo.AssertExpectations(t)
}

func TestLogin_InvalidCredentialsLookAlike(t *testing.T) {
	router, mockRepo := setupTest()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", mock.Anything, "silvio@mail.com").Return(&model.UserWithCredential{
		User:     model.User{ID: 3, Email: "silvio@mail.com"},
		PassHash: string(hash),
	}, nil)
	mockRepo.On("FindByEmail", mock.Anything, "ghost@mail.com").Return(nil, repository.ErrNotFound)

	wrongPassword := postJSON(router, "/auth/login", handler.LoginRequest{Email: "silvio@mail.com", Password: "nope"})
	unknownEmail := postJSON(router, "/auth/login", handler.LoginRequest{Email: "ghost@mail.com", Password: "password123"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_DatabaseError(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("FindByEmail", mock.Anything, "silvio@mail.com").Return(nil, errors.New("connection refused"))

	resp := postJSON(router, "/auth/login", handler.LoginRequest{Email: "silvio@mail.com", Password: "password123"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection refused")
}

func TestRefresh_RotatesCookie(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	registered := postJSON(router, "/auth/register", handler.RegisterRequest{Name: "Silvio", Email: "s@mail.com", Password: "p"})
	cookie := refreshCookie(registered)
	require.NotNil(t, cookie)

	req, _ := http.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotNil(t, refreshCookie(resp))
	assert.Contains(t, resp.Body.String(), "access_token")
}

func TestRefresh_WithoutCookie(t *testing.T) {
	router, _ := setupTest()

	resp := postJSON(router, "/auth/refresh", nil)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "refresh token is not provided")
}

func TestRefresh_RejectsAccessTokenInCookie(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	registered := postJSON(router, "/auth/register", handler.RegisterRequest{Name: "Silvio", Email: "s@mail.com", Password: "p"})

	var tokens handler.TokenResponse
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &tokens))

	req, _ := http.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: tokens.AccessToken})
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdateUser_OnlyGivenFields(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	registered := postJSON(router, "/auth/register", handler.RegisterRequest{Name: "Silvio", Email: "s@mail.com", Password: "p"})
	var tokens handler.TokenResponse
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &tokens))

	surname := "Dante"
	mockRepo.On("Update", mock.Anything, uint(1), map[string]any{"surname": "Dante"}).
		Return(&model.User{ID: 1, Name: "Silvio", Surname: &surname, Email: "s@mail.com"}, nil)

	req, _ := http.NewRequest(http.MethodPut, "/users/1", bytes.NewBufferString(`{"surname":"Dante"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"id":1,"name":"Silvio","surname":"Dante","email":"s@mail.com"}`, resp.Body.String())
	mockRepo.AssertExpectations(t)
}

func TestGetUser_ForeignIDIsForbidden(t *testing.T) {
	router, mockRepo := setupTest()
	mockRepo.On("CreateWithCredential", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	registered := postJSON(router, "/auth/register", handler.RegisterRequest{Name: "Silvio", Email: "s@mail.com", Password: "p"})
	var tokens handler.TokenResponse
	require.NoError(t, json.Unmarshal(registered.Body.Bytes(), &tokens))

	req, _ := http.NewRequest(http.MethodGet, "/users/2", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
