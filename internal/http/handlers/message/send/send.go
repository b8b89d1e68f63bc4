// Package send реализует HTTP-обработчик отправки сообщения по объявлению.
package send

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/response"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	services "github.com/magabrotheeeer/rental-aggregator/internal/services/message"
)

// Request — структура входных данных для отправки сообщения.
type Request struct {
	RentalID int64  `json:"rental_id" validate:"required,gt=0"`
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	Message  string `json:"message" validate:"required,max=2000"`
}

// Handler обрабатывает HTTP-запросы отправки сообщений.
type Handler struct {
	log            *slog.Logger
	messageService Service
	validate       *validator.Validate
}

// Service описывает интерфейс бизнес-логики сообщений.
type Service interface {
	Send(ctx context.Context, authUserID, userID, rentalID int64, text string) (*models.Message, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, messageService Service) *Handler {
	return &Handler{
		log:            log,
		messageService: messageService,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Отправка сообщения
// @Description Сохраняет сообщение текущего пользователя по объявлению.
// @Tags Messages
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Сообщение"
// @Success 200 {object} map[string]any "Сообщение отправлено"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 403 {object} response.ErrorResponse "user_id не совпадает с текущим пользователем"
// @Failure 404 {object} response.ErrorResponse "Объявление не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /messages [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.message.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authUserID, ok := r.Context().Value(middlewarectx.UserID).(int64)
	if !ok {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	_, err := h.messageService.Send(r.Context(), authUserID, req.UserID, req.RentalID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserMismatch):
			log.Error("user id mismatch", slog.Int64("user_id", req.UserID), slog.Int64("auth_user_id", authUserID))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("user id does not match authenticated user"))
		case errors.Is(err, services.ErrRentalNotFound):
			log.Error("rental not found", slog.Int64("rental_id", req.RentalID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("rental not found"))
		default:
			log.Error("failed to send message", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal error"))
		}
		return
	}

	log.Info("message sent", slog.Int64("rental_id", req.RentalID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Message send with success",
	}))
}
