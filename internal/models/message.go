package models

import "time"

// Message представляет сообщение пользователя по поводу объявления.
// Обе ссылки проверяются на существование до сохранения.
type Message struct {
	ID        int64     `json:"id"`         // Уникальный идентификатор сообщения
	RentalID  int64     `json:"rental_id"`  // Объявление, к которому относится сообщение
	UserID    int64     `json:"user_id"`    // Автор сообщения
	Message   string    `json:"message"`    // Текст сообщения
	CreatedAt time.Time `json:"created_at"` // Дата создания
	UpdatedAt time.Time `json:"updated_at"` // Дата последнего изменения
}
