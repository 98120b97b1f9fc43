package auth_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "github.com/proval-lk/valuer-client/internal/http/handlers/auth"
	"github.com/proval-lk/valuer-client/internal/http/response"
	"github.com/proval-lk/valuer-client/internal/models"
	"github.com/proval-lk/valuer-client/internal/services/auth"
	"github.com/proval-lk/valuer-client/internal/storage"
)

// Мок для Service
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *ServiceMock) Login(email, password string) (*models.AuthResponse, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func (m *ServiceMock) Me(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *ServiceMock) VerifyEmail(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *ServiceMock) ResendVerification(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMocks  func(s *ServiceMock)
		wantStatus  int
		wantMessage string
		wantToken   string
	}{
		{
			name: "successful login",
			body: `{"email":"valuer@example.lk","password":"password123"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", "valuer@example.lk", "password123").Return(&models.AuthResponse{
					User:  &models.User{Email: "valuer@example.lk"},
					Token: "access-token",
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantToken:  "access-token",
		},
		{
			name:       "malformed body",
			body:       `{not json`,
			setupMocks: func(s *ServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       `{"email":"valuer@example.lk"}`,
			setupMocks: func(s *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "invalid credentials",
			body: `{"email":"valuer@example.lk","password":"wrongpass"}`,
			setupMocks: func(s *ServiceMock) {
				s.On("Login", "valuer@example.lk", "wrongpass").
					Return(nil, auth.ErrInvalidCredentials).Once()
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid email or password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			handler := handlers.NewLoginHandler(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantToken != "" {
				var got models.AuthResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantToken, got.Token)
			}
			if tt.wantMessage != "" {
				var got response.Error
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantMessage, got.Message)
			}

			svc.AssertExpectations(t)
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	validBody := `{"email":"valuer@example.lk","password":"password123","full_name":"Test Valuer"}`

	tests := []struct {
		name        string
		body        string
		setupMocks  func(s *ServiceMock)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "successful registration",
			body: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.MatchedBy(func(req models.RegisterRequest) bool {
					return req.Email == "valuer@example.lk" && req.FullName == "Test Valuer"
				})).Return(&models.AuthResponse{
					User:                 &models.User{Email: "valuer@example.lk"},
					Token:                "access-token",
					RequiresVerification: true,
				}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "short password",
			body:       `{"email":"valuer@example.lk","password":"short","full_name":"Test Valuer"}`,
			setupMocks: func(s *ServiceMock) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "email taken",
			body: validBody,
			setupMocks: func(s *ServiceMock) {
				s.On("Register", mock.Anything).Return(nil, storage.ErrEmailTaken).Once()
			},
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Email is already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMocks(svc)

			handler := handlers.NewRegisterHandler(newNoopLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantMessage != "" {
				var got response.Error
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, tt.wantMessage, got.Message)
			}

			svc.AssertExpectations(t)
		})
	}
}
