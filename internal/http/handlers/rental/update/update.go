// Package update реализует HTTP-обработчик обновления объявления.
//
// Запрос приходит как multipart/form-data. Менять объявление может только
// его владелец, картинка заменяется только если в форме передан новый файл.
package update

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/response"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/filestore"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
)

// Максимальный размер формы с картинкой.
const maxFormSize = 10 << 20

// Handler обрабатывает HTTP-запросы обновления объявления.
type Handler struct {
	log           *slog.Logger
	rentalService Service
	validate      *validator.Validate
}

// Service описывает интерфейс бизнес-логики объявлений.
type Service interface {
	Update(ctx context.Context, userID, rentalID int64, req models.DummyRental,
		pictureName string, picture io.Reader, pictureSize int64) (*models.Rental, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, rentalService Service) *Handler {
	return &Handler{
		log:           log,
		rentalService: rentalService,
		validate:      validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление объявления
// @Description Обновляет объявление. Доступно только владельцу.
// @Tags Rentals
// @Accept  mpfd
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID объявления"
// @Param name formData string true "Название"
// @Param surface formData int true "Площадь"
// @Param price formData int true "Цена"
// @Param description formData string true "Описание"
// @Param picture formData file false "Новая картинка"
// @Success 200 {object} map[string]any "Объявление обновлено"
// @Failure 400 {object} response.ErrorResponse "Некорректная форма или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 403 {object} response.ErrorResponse "Пользователь не владелец объявления"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /rentals/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rental.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	rentalID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("invalid rental id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid rental id"))
		return
	}

	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	req, err := formToRental(r)
	if err != nil {
		log.Error("failed to parse form fields", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var (
		picture     io.Reader
		pictureName string
		pictureSize int64
	)
	file, header, err := r.FormFile("picture")
	switch {
	case err == nil:
		defer func() {
			_ = file.Close()
		}()
		picture = file
		pictureName = header.Filename
		pictureSize = header.Size
	case errors.Is(err, http.ErrMissingFile):
		// без нового файла прежняя картинка сохраняется
	default:
		log.Error("failed to read picture", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid picture"))
		return
	}

	rental, err := h.rentalService.Update(r.Context(), userID, rentalID, req, pictureName, picture, pictureSize)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRentalNotFound):
			log.Error("rental not found", slog.Int64("id", rentalID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("rental not found"))
		case errors.Is(err, services.ErrNotOwner):
			log.Error("not the owner of the rental", slog.Int64("id", rentalID), slog.Int64("user_id", userID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("not the owner of the rental"))
		case errors.Is(err, filestore.ErrEmptyFile):
			log.Error("empty picture file", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("empty picture file"))
		default:
			log.Error("failed to update rental", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("rental updated", slog.Int64("id", rental.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Rental updated !",
	}))
}

// formToRental собирает DummyRental из текстовых полей формы.
func formToRental(r *http.Request) (models.DummyRental, error) {
	var req models.DummyRental

	surface, err := strconv.Atoi(r.FormValue("surface"))
	if err != nil {
		return req, errors.New("field surface must be an integer")
	}
	price, err := strconv.Atoi(r.FormValue("price"))
	if err != nil {
		return req, errors.New("field price must be an integer")
	}

	req.Name = r.FormValue("name")
	req.Surface = surface
	req.Price = price
	req.Description = r.FormValue("description")
	return req, nil
}
