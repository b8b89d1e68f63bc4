package rentalaggregator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/rental-aggregator/internal/config"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/filestore"
	"github.com/magabrotheeeer/rental-aggregator/internal/lib/jwt"
	"github.com/magabrotheeeer/rental-aggregator/internal/migrations"
	authservice "github.com/magabrotheeeer/rental-aggregator/internal/services/auth"
	messageservice "github.com/magabrotheeeer/rental-aggregator/internal/services/message"
	rentalservice "github.com/magabrotheeeer/rental-aggregator/internal/services/rental"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"

	_ "github.com/magabrotheeeer/rental-aggregator/docs"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	files := filestore.New(cfg.UploadDir, cfg.PublicHost, cfg.PublicPrefix)

	authService := authservice.NewAuthService(db, jwtMaker)
	rentalService := rentalservice.NewRentalService(db, files, logger)
	messageService := messageservice.NewMessageService(db, db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, db, files, authService, rentalService, messageService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
