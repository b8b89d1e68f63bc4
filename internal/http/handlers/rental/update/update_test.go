package update

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
)

type RentalServiceMock struct {
	mock.Mock
}

func (m *RentalServiceMock) Update(ctx context.Context, userID, rentalID int64, req models.DummyRental,
	pictureName string, picture io.Reader, pictureSize int64) (*models.Rental, error) {
	args := m.Called(ctx, userID, rentalID, req, pictureName, picture, pictureSize)
	rental, _ := args.Get(0).(*models.Rental)
	return rental, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func buildForm(t *testing.T, fields map[string]string, pictureName string, picture []byte) (*bytes.Buffer, string) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if pictureName != "" {
		part, err := writer.CreateFormFile("picture", pictureName)
		require.NoError(t, err)
		_, err = part.Write(picture)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUpdateHandler(t *testing.T) {
	validFields := map[string]string{
		"name":        "Updated flat",
		"surface":     "50",
		"price":       "1300",
		"description": "Updated description",
	}

	tests := []struct {
		name           string
		id             string
		fields         map[string]string
		authenticated  bool
		setupMocks     func(s *RentalServiceMock)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:          "owner updates rental",
			id:            "1",
			fields:        validFields,
			authenticated: true,
			setupMocks: func(s *RentalServiceMock) {
				s.On("Update", mock.Anything, int64(7), int64(1), models.DummyRental{
					Name:        "Updated flat",
					Surface:     50,
					Price:       1300,
					Description: "Updated description",
				}, "", nil, int64(0)).
					Return(&models.Rental{ID: 1, OwnerID: 7}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       "Rental updated !",
		},
		{
			name:          "rental not found",
			id:            "99",
			fields:        validFields,
			authenticated: true,
			setupMocks: func(s *RentalServiceMock) {
				s.On("Update", mock.Anything, int64(7), int64(99), mock.Anything, "", nil, int64(0)).
					Return(nil, services.ErrRentalNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:          "not the owner",
			id:            "1",
			fields:        validFields,
			authenticated: true,
			setupMocks: func(s *RentalServiceMock) {
				s.On("Update", mock.Anything, int64(7), int64(1), mock.Anything, "", nil, int64(0)).
					Return(nil, services.ErrNotOwner).Once()
			},
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "unauthenticated",
			id:             "1",
			fields:         validFields,
			authenticated:  false,
			setupMocks:     func(s *RentalServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "invalid surface",
			id:   "1",
			fields: map[string]string{
				"name":        "Updated flat",
				"surface":     "wide",
				"price":       "1300",
				"description": "Updated description",
			},
			authenticated:  true,
			setupMocks:     func(s *RentalServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(RentalServiceMock)
			tt.setupMocks(svc)
			handler := New(newNoopLogger(), svc)

			body, contentType := buildForm(t, tt.fields, "", nil)
			req := httptest.NewRequest(http.MethodPut, "/api/rentals/"+tt.id, body)
			req.Header.Set("Content-Type", contentType)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.authenticated {
				ctx = context.WithValue(ctx, middlewarectx.UserID, int64(7))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}

			svc.AssertExpectations(t)
		})
	}
}
