package login

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	services "github.com/magabrotheeeer/rental-aggregator/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(s *AuthServiceMock)
		wantStatusCode int
		wantToken      string
	}{
		{
			name: "successful login",
			body: map[string]string{"email": "test@example.com", "password": "password123"},
			setupMocks: func(s *AuthServiceMock) {
				s.On("Login", mock.Anything, "test@example.com", "password123").
					Return("signed-token", nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "signed-token",
		},
		{
			name:           "invalid json",
			body:           "{not json",
			setupMocks:     func(s *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			body:           map[string]string{"password": "password123"},
			setupMocks:     func(s *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           map[string]string{"email": "not-an-email", "password": "password123"},
			setupMocks:     func(s *AuthServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: map[string]string{"email": "test@example.com", "password": "wrong"},
			setupMocks: func(s *AuthServiceMock) {
				s.On("Login", mock.Anything, "test@example.com", "wrong").
					Return("", services.ErrInvalidCredentials).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(AuthServiceMock)
			tt.setupMocks(svc)
			handler := New(newNoopLogger(), svc)

			var body bytes.Buffer
			switch b := tt.body.(type) {
			case string:
				body.WriteString(b)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(b))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", &body)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantToken != "" {
				var resp struct {
					Status string `json:"status"`
					Data   struct {
						Token string `json:"token"`
					} `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, tt.wantToken, resp.Data.Token)
			}

			svc.AssertExpectations(t)
		})
	}
}
