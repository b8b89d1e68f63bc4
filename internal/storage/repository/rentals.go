package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/rental-aggregator/internal/models"
)

// SaveRental сохраняет объявление: вставляет новую запись, если ID ещё
// не назначен, иначе обновляет существующую. owner_id и created_at при
// обновлении не затрагиваются.
func (s *Storage) SaveRental(ctx context.Context, rental models.Rental) (*models.Rental, error) {
	const op = "storage.SaveRental"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	now := time.Now().UTC()
	rental.UpdatedAt = now

	if rental.ID == 0 {
		rental.CreatedAt = now
		query := `INSERT INTO rentals (name, surface, price, description, picture, owner_id,
				      created_at, updated_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				  RETURNING id;`
		if err := s.DB.QueryRowContext(ctx, query,
			rental.Name, rental.Surface, rental.Price, rental.Description, rental.Picture,
			rental.OwnerID, rental.CreatedAt, rental.UpdatedAt).Scan(&rental.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &rental, nil
	}

	query := `UPDATE rentals
			  SET name = $1, surface = $2, price = $3, description = $4, picture = $5,
			      updated_at = $6
			  WHERE id = $7`
	if _, err := s.DB.ExecContext(ctx, query,
		rental.Name, rental.Surface, rental.Price, rental.Description, rental.Picture,
		rental.UpdatedAt, rental.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rental, nil
}

// GetRentalByID возвращает объявление по его идентификатору.
func (s *Storage) GetRentalByID(ctx context.Context, id int64) (*models.Rental, error) {
	const op = "storage.GetRentalByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, surface, price, description, picture, owner_id,
			      created_at, updated_at
			  FROM rentals
			  WHERE id = $1`
	r := &models.Rental{}
	if err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&r.ID, &r.Name, &r.Surface, &r.Price, &r.Description, &r.Picture, &r.OwnerID,
		&r.CreatedAt, &r.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// ListRentals возвращает все объявления без фильтрации и сортировки.
func (s *Storage) ListRentals(ctx context.Context) ([]*models.Rental, error) {
	const op = "storage.ListRentals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, surface, price, description, picture, owner_id,
			      created_at, updated_at
			  FROM rentals`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Rental
	for rows.Next() {
		var r models.Rental
		if err = rows.Scan(&r.ID, &r.Name, &r.Surface, &r.Price, &r.Description, &r.Picture,
			&r.OwnerID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
