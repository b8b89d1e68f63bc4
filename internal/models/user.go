// Package models содержит доменные структуры приложения: пользователи,
// объявления аренды и сообщения. Структуры используются в бизнес-логике
// и при работе с хранилищем; json-теги описывают внешнее представление.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Хэш пароля наружу не сериализуется.
type User struct {
	ID           int64     `json:"id"`         // Уникальный идентификатор пользователя
	Name         string    `json:"name"`       // Отображаемое имя
	Email        string    `json:"email"`      // Электронная почта, уникальная, ключ входа
	PasswordHash string    `json:"-"`          // Хэш пароля (bcrypt)
	CreatedAt    time.Time `json:"created_at"` // Дата создания, назначается хранилищем
	UpdatedAt    time.Time `json:"updated_at"` // Дата последнего изменения
}
