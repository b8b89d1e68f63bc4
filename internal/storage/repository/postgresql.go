// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей, объявлений аренды и сообщений. Предоставляет методы
// сохранения (вставка или обновление) и чтения записей без фильтрации
// и пагинации.
package repository

import (
	"context"
	"errors"
	"fmt"

	"database/sql"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается методами чтения, когда запись с указанным
// идентификатором или email отсутствует.
var ErrNotFound = errors.New("not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями, объявлениями и сообщениями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'rentals'
    )`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("required table rentals missing or query error: %w", err)
	}
	if !exists {
		return errors.New("required table rentals missing")
	}
	return nil
}
