package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"medirecord-service/internal/app/config"
	"medirecord-service/internal/app/delivery/http/middlewares"
	"medirecord-service/internal/app/services/auth"
	"medirecord-service/internal/app/services/shared/jwtmanager"
	"medirecord-service/internal/pkg/dto/requests"
	"medirecord-service/internal/pkg/dto/responses"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.RegisterUser), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func TestAuthRouter_RegisterEndpoint(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{
		App: config.App{
			LoginRatePerSecond: 100,
			LoginBurst:         100,
		},
	}

	mockAuthUsecase := new(MockAuthUsecase)
	authController := auth.NewAuthController(mockAuthUsecase, 10*time.Second, logger)

	jwtManager := jwtmanager.NewJWTManager("test-secret", 2*time.Hour)
	middlewareInstance := middlewares.NewMiddlewares(jwtManager, internalConfig, logger)

	router := chi.NewRouter()
	attachAuthRoutes(router, middlewareInstance, authController)

	t.Run("Register with valid body", func(t *testing.T) {
		mockAuthUsecase.On("Register", mock.Anything, mock.AnythingOfType("*requests.RegisterUser")).
			Return(&responses.RegisterUser{UserID: "user-id-1"}, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "plain-password",
			"role":     "doctor",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
	})

	t.Run("Register with invalid email is a bad request", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":     "New User",
			"email":    "not-an-email",
			"password": "plain-password",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Register with short password is a bad request", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "short",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Register with unknown role is a bad request", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":     "New User",
			"email":    "new@example.com",
			"password": "plain-password",
			"role":     "superuser",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Login returns an access token", func(t *testing.T) {
		mockAuthUsecase.On("Login", mock.Anything, mock.AnythingOfType("*requests.LoginUser")).
			Return(&responses.LoginUser{AccessToken: "signed-token"}, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "doctor@example.com",
			"password": "plain-password",
		})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "signed-token")
	})
}
