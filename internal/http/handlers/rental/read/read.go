// Package read реализует HTTP-обработчик чтения одного объявления.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/response"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
)

// Handler обрабатывает HTTP-запросы чтения объявления.
type Handler struct {
	log           *slog.Logger
	rentalService Service
}

// Service описывает интерфейс бизнес-логики объявлений.
type Service interface {
	Get(ctx context.Context, id int64) (*models.Rental, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, rentalService Service) *Handler {
	return &Handler{
		log:           log,
		rentalService: rentalService,
	}
}

// ServeHTTP godoc
// @Summary Объявление по ID
// @Description Возвращает одно объявление об аренде.
// @Tags Rentals
// @Produce  json
// @Param id path int true "ID объявления"
// @Success 200 {object} models.Rental "Объявление"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /rentals/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid rental id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid rental id"))
		return
	}

	rental, err := h.rentalService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRentalNotFound) {
			log.Error("rental not found", slog.Int64("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("rental not found"))
			return
		}
		log.Error("failed to get rental", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.OKWithData(rental))
}
