// Package me реализует HTTP-обработчик профиля текущего пользователя.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/response"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/sl"
	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	authservice "github.com/magabrotheeeer/rental-aggregator/internal/services/auth"
)

// Handler обрабатывает HTTP-запросы профиля текущего пользователя.
type Handler struct {
	log         *slog.Logger
	authService Service
}

// Service описывает интерфейс получения пользователей.
type Service interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, authService Service) *Handler {
	return &Handler{
		log:         log,
		authService: authService,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает профиль аутентифицированного пользователя.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} models.User "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

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

	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			log.Error("user from token no longer exists", slog.Int64("user_id", userID))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to get current user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.OKWithData(user))
}
