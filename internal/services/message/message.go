// Package services содержит бизнес-логику для сообщений по объявлениям.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/rental-aggregator/internal/models"
	"github.com/magabrotheeeer/rental-aggregator/internal/storage/repository"
)

// Ошибки уровня сервиса сообщений.
var (
	// ErrRentalNotFound возвращается, когда объявление не найдено.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrUserMismatch возвращается, когда user_id в запросе не совпадает
	// с аутентифицированным пользователем.
	ErrUserMismatch = errors.New("user id does not match authenticated user")
)

// MessageRepository определяет методы для работы с сообщениями в хранилище.
type MessageRepository interface {
	// SaveMessage сохраняет сообщение и возвращает его с назначенным ID.
	SaveMessage(ctx context.Context, message models.Message) (*models.Message, error)
}

// RentalReader проверяет существование объявления.
type RentalReader interface {
	// GetRentalByID возвращает объявление по ID.
	GetRentalByID(ctx context.Context, id int64) (*models.Rental, error)
}

// MessageService реализует бизнес-логику отправки сообщений.
type MessageService struct {
	repo    MessageRepository
	rentals RentalReader
	log     *slog.Logger
}

// NewMessageService создает новый экземпляр MessageService.
func NewMessageService(repo MessageRepository, rentals RentalReader, log *slog.Logger) *MessageService {
	return &MessageService{
		repo:    repo,
		rentals: rentals,
		log:     log,
	}
}

// Send сохраняет сообщение от authUserID по объявлению rentalID.
// userID из запроса обязан совпадать с аутентифицированным пользователем.
func (s *MessageService) Send(ctx context.Context, authUserID, userID, rentalID int64, text string) (*models.Message, error) {
	const op = "services.Send"

	if userID != authUserID {
		return nil, ErrUserMismatch
	}

	if _, err := s.rentals.GetRentalByID(ctx, rentalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRentalNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	message := models.Message{
		RentalID: rentalID,
		UserID:   userID,
		Message:  text,
	}
	saved, err := s.repo.SaveMessage(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("saved new message", slog.Int64("id", saved.ID), slog.Int64("rental_id", rentalID))

	return saved, nil
}
