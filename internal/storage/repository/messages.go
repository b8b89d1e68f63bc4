package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/rental-aggregator/internal/models"
)

// SaveMessage сохраняет новое сообщение по объявлению.
func (s *Storage) SaveMessage(ctx context.Context, message models.Message) (*models.Message, error) {
	const op = "storage.SaveMessage"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	now := time.Now().UTC()
	message.CreatedAt = now
	message.UpdatedAt = now

	query := `INSERT INTO messages (rental_id, user_id, message, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		message.RentalID, message.UserID, message.Message,
		message.CreatedAt, message.UpdatedAt).Scan(&message.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &message, nil
}
