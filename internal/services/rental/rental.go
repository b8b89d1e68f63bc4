// Package services содержит бизнес-логику для управления объявлениями об аренде.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"
)

// Ошибки уровня сервиса объявлений.
var (
	// ErrRentalNotFound возвращается, когда объявление не найдено.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrNotOwner возвращается при попытке изменить чужое объявление.
	ErrNotOwner = errors.New("not the owner of the rental")
)

// RentalRepository определяет методы для работы с объявлениями в хранилище.
type RentalRepository interface {
	// SaveRental сохраняет объявление и возвращает его с назначенным ID.
	SaveRental(ctx context.Context, rental models.Rental) (*models.Rental, error)
	// GetRentalByID возвращает объявление по ID.
	GetRentalByID(ctx context.Context, id int64) (*models.Rental, error)
	// ListRentals возвращает все объявления.
	ListRentals(ctx context.Context) ([]*models.Rental, error)
}

// FileStore описывает сохранение загруженных картинок.
type FileStore interface {
	// Save сохраняет содержимое файла и возвращает публичный URL.
	Save(originalName string, src io.Reader, size int64) (string, error)
}

// RentalService реализует бизнес-логику работы с объявлениями.
type RentalService struct {
	repo  RentalRepository
	files FileStore
	log   *slog.Logger
}

// NewRentalService создает новый экземпляр RentalService.
func NewRentalService(repo RentalRepository, files FileStore, log *slog.Logger) *RentalService {
	return &RentalService{
		repo:  repo,
		files: files,
		log:   log,
	}
}

// List возвращает все объявления.
func (s *RentalService) List(ctx context.Context) ([]*models.Rental, error) {
	const op = "services.List"

	rentals, err := s.repo.ListRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rentals, nil
}

// Get возвращает объявление по ID.
func (s *RentalService) Get(ctx context.Context, id int64) (*models.Rental, error) {
	const op = "services.Get"

	rental, err := s.repo.GetRentalByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rental, nil
}

// Create сохраняет картинку и создает новое объявление от имени ownerID.
// Картинка обязательна, объявление без картинки не создается.
func (s *RentalService) Create(ctx context.Context, ownerID int64, req models.DummyRental,
	pictureName string, picture io.Reader, pictureSize int64) (*models.Rental, error) {
	const op = "services.Create"

	pictureURL, err := s.files.Save(pictureName, picture, pictureSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rental := models.Rental{
		Name:        req.Name,
		Surface:     req.Surface,
		Price:       req.Price,
		Description: req.Description,
		Picture:     pictureURL,
		OwnerID:     ownerID,
	}
	saved, err := s.repo.SaveRental(ctx, rental)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("created new rental", slog.Int64("id", saved.ID), slog.Int64("owner_id", ownerID))

	return saved, nil
}

// Update обновляет объявление. Отсутствие объявления проверяется раньше
// владения, чужое объявление менять нельзя. Картинка заменяется только
// если передана новая.
func (s *RentalService) Update(ctx context.Context, userID, rentalID int64, req models.DummyRental,
	pictureName string, picture io.Reader, pictureSize int64) (*models.Rental, error) {
	const op = "services.Update"

	rental, err := s.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if rental.OwnerID != userID {
		return nil, ErrNotOwner
	}

	rental.Name = req.Name
	rental.Surface = req.Surface
	rental.Price = req.Price
	rental.Description = req.Description

	if picture != nil {
		url, err := s.files.Save(pictureName, picture, pictureSize)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rental.Picture = url
	}

	saved, err := s.repo.SaveRental(ctx, *rental)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("updated rental", slog.Int64("id", saved.ID))

	return saved, nil
}
