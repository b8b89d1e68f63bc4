// Package rentalaggregator предоставляет маршруты для основного приложения.
package rentalaggregator

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/health"
	messagesend "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/message/send"
	rentalcreate "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/rental/create"
	rentallist "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/rental/list"
	rentalread "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/rental/read"
	rentalupdate "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/rental/update"
	userread "github.com/magabrotheeeer/rental-aggregator/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/rental-aggregator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/filestore"
	authservice "github.com/magabrotheeeer/rental-aggregator/internal/services/auth"
	messageservice "github.com/magabrotheeeer/rental-aggregator/internal/services/message"
	rentalservice "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage, files *filestore.Store,
	authService *authservice.AuthService, rentalService *rentalservice.RentalService,
	messageService *messageservice.MessageService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/rentals", rentallist.New(logger, rentalService).ServeHTTP)
		r.Get("/rentals/{id}", rentalread.New(logger, rentalService).ServeHTTP)
		r.Get("/user/{id}", userread.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/auth/me", me.New(logger, authService).ServeHTTP)
			r.Post("/rentals", rentalcreate.New(logger, rentalService).ServeHTTP)
			r.Put("/rentals/{id}", rentalupdate.New(logger, rentalService).ServeHTTP)
			r.Post("/messages", messagesend.New(logger, messageService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// Раздача загруженных картинок
	r.Handle(files.PublicPrefix()+"/*",
		http.StripPrefix(files.PublicPrefix()+"/", http.FileServer(http.Dir(files.Dir()))))
}
