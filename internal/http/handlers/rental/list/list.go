// Package list реализует HTTP-обработчик списка объявлений.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/response"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
)

// Handler обрабатывает HTTP-запросы списка объявлений.
type Handler struct {
	log           *slog.Logger
	rentalService Service
}

// Service описывает интерфейс бизнес-логики объявлений.
type Service interface {
	List(ctx context.Context) ([]*models.Rental, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, rentalService Service) *Handler {
	return &Handler{
		log:           log,
		rentalService: rentalService,
	}
}

// ServeHTTP godoc
// @Summary Список объявлений
// @Description Возвращает все объявления об аренде.
// @Tags Rentals
// @Produce  json
// @Success 200 {object} map[string]any "Список объявлений"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /rentals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rentals, err := h.rentalService.List(r.Context())
	if err != nil {
		log.Error("failed to list rentals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}
	if rentals == nil {
		rentals = []*models.Rental{}
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"rentals": rentals,
	}))
}
