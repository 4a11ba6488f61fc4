package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	handlers "socialmedia/internal/handler"
	"socialmedia/internal/models"
	"socialmedia/internal/repository"
)

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(*MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "creates the user",
			body: map[string]interface{}{
				"username": "alice",
				"password": "secret1",
				"email":    "alice@example.com",
			},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Register", mock.Anything, repository.CreateUserRequest{
					Username: "alice",
					Password: "secret1",
					Email:    "alice@example.com",
				}).Return(&models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: map[string]interface{}{
				"username": "alice",
				"password": "secret1",
			},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, models.NewConflict("Username already exists"))
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Username already exists",
		},
		{
			name: "short password",
			body: map[string]interface{}{
				"username": "alice",
				"password": "123",
			},
			mockSetup: func(auth *MockAuthService) {
				auth.On("Register", mock.Anything, mock.Anything).
					Return(nil, models.NewInvalidInput("Password must be at least 6 characters"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Password must be at least 6 characters",
		},
		{
			name:           "missing username rejected before the service",
			body:           map[string]interface{}{"password": "secret1"},
			mockSetup:      func(auth *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockAuth, _, _ := newHandlers()
			tt.mockSetup(mockAuth)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			h.Register(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, rr))
			}
			mockAuth.AssertExpectations(t)
		})
	}
}

func TestRegisterHandlerHidesPasswordHash(t *testing.T) {
	h, mockAuth, _, _ := newHandlers()

	mockAuth.On("Register", mock.Anything, mock.Anything).
		Return(&models.User{UserID: 1, Username: "alice", PasswordHash: "$2a$10$secret"}, nil)

	body := []byte(`{"username":"alice","password":"secret1"}`)
	req := httptest.NewRequest(http.MethodPost, "/users/register", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "secret")
	assert.NotContains(t, rr.Body.String(), "passwordHash")
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(*MockAuthService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "returns token payload",
			body: `{"username":"alice","password":"secret1"}`,
			mockSetup: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "alice", "secret1").
					Return(&models.User{UserID: 1, Username: "alice"}, "access-token", "refresh-token", nil)
				auth.On("AccessTokenTTL").Return(2 * time.Hour)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"username":"alice","password":"wrong1"}`,
			mockSetup: func(auth *MockAuthService) {
				auth.On("Login", mock.Anything, "alice", "wrong1").
					Return(nil, "", "", models.NewUnauthorized("Invalid username or password"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid username or password",
		},
		{
			name:           "malformed body",
			body:           `{"username":`,
			mockSetup:      func(auth *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockAuth, _, _ := newHandlers()
			tt.mockSetup(mockAuth)

			req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rr := httptest.NewRecorder()
			h.Login(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, rr))
			}
			mockAuth.AssertExpectations(t)
		})
	}
}

func TestLoginHandlerPayload(t *testing.T) {
	h, mockAuth, _, _ := newHandlers()

	mockAuth.On("Login", mock.Anything, "alice", "secret1").
		Return(&models.User{UserID: 1, Username: "alice"}, "access-token", "refresh-token", nil)
	mockAuth.On("AccessTokenTTL").Return(2 * time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"alice","password":"secret1"}`))
	rr := httptest.NewRecorder()

	h.Login(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp handlers.LoginResponse
	decodeBody(t, rr, &resp)
	assert.Equal(t, "access-token", resp.Token)
	assert.Equal(t, int64(7200), resp.ExpiresIn)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Run("rotates tokens", func(t *testing.T) {
		h, mockAuth, _, _ := newHandlers()

		mockAuth.On("RefreshTokens", mock.Anything, "old-refresh").
			Return(&models.User{UserID: 1}, "new-access", "new-refresh", nil)
		mockAuth.On("AccessTokenTTL").Return(2 * time.Hour)

		req := httptest.NewRequest(http.MethodPost, "/users/refresh-token", strings.NewReader(`{"refreshToken":"old-refresh"}`))
		rr := httptest.NewRecorder()

		h.RefreshToken(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp handlers.LoginResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "new-access", resp.Token)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		h, mockAuth, _, _ := newHandlers()

		req := httptest.NewRequest(http.MethodPost, "/users/refresh-token", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()

		h.RefreshToken(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Missing refreshToken", errorMessage(t, rr))
		mockAuth.AssertNotCalled(t, "RefreshTokens", mock.Anything, mock.Anything)
	})

	t.Run("expired token", func(t *testing.T) {
		h, mockAuth, _, _ := newHandlers()

		mockAuth.On("RefreshTokens", mock.Anything, "stale").
			Return(nil, "", "", models.NewUnauthorized("Invalid refresh token"))

		req := httptest.NewRequest(http.MethodPost, "/users/refresh-token", strings.NewReader(`{"refreshToken":"stale"}`))
		rr := httptest.NewRecorder()

		h.RefreshToken(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
