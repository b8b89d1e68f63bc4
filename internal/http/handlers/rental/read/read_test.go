package read

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
)

type RentalServiceMock struct {
	mock.Mock
}

func (m *RentalServiceMock) Get(ctx context.Context, id int64) (*models.Rental, error) {
	args := m.Called(ctx, id)
	rental, _ := args.Get(0).(*models.Rental)
	return rental, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requestWithID(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/rentals/"+id, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestReadHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMocks     func(s *RentalServiceMock)
		wantStatusCode int
	}{
		{
			name: "returns rental",
			id:   "1",
			setupMocks: func(s *RentalServiceMock) {
				s.On("Get", mock.Anything, int64(1)).
					Return(&models.Rental{ID: 1, Name: "Flat", OwnerID: 7}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "rental not found",
			id:   "99",
			setupMocks: func(s *RentalServiceMock) {
				s.On("Get", mock.Anything, int64(99)).
					Return(nil, services.ErrRentalNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			id:             "abc",
			setupMocks:     func(s *RentalServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(RentalServiceMock)
			tt.setupMocks(svc)
			handler := New(newNoopLogger(), svc)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithID(tt.id))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantStatusCode == http.StatusOK {
				var resp struct {
					Status string        `json:"status"`
					Data   models.Rental `json:"data"`
				}
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "OK", resp.Status)
				assert.Equal(t, int64(1), resp.Data.ID)
			}

			svc.AssertExpectations(t)
		})
	}
}
