package models

import "time"

// Rental представляет объявление аренды. Владелец назначается при
// создании из аутентифицированного пользователя и далее не меняется.
type Rental struct {
	ID          int64     `json:"id"`          // Уникальный идентификатор объявления
	Name        string    `json:"name"`        // Название объявления
	Surface     int       `json:"surface"`     // Площадь, м²
	Price       int       `json:"price"`       // Цена аренды
	Picture     string    `json:"picture"`     // Публичная ссылка на изображение
	Description string    `json:"description"` // Описание объявления
	OwnerID     int64     `json:"owner_id"`    // Идентификатор владельца
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
	UpdatedAt   time.Time `json:"updated_at"`  // Дата последнего изменения
}

// DummyRental используется для приёма полей multipart-формы,
// прежде чем конвертировать их в Rental. Числовые поля парсятся
// из строк формы и валидируются вручную.
type DummyRental struct {
	Name        string `validate:"required,max=255"`  // Название
	Surface     int    `validate:"required,gt=0"`     // Площадь (>0)
	Price       int    `validate:"required,gt=0"`     // Цена (>0)
	Description string `validate:"required,max=2000"` // Описание
}
