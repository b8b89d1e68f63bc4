// Package jwt реализует выпуск и разбор JWT токенов с пользовательскими
// claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов,
// MakerImpl — конкретная реализация на симметричном ключе HS256.
package jwt

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает данные, хранящиеся в JWT.
// Subject стандартных claims содержит email пользователя.
type CustomClaims struct {
	UserID               int64 `json:"userId"` // Идентификатор пользователя
	jwt.RegisteredClaims       // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для выпуска и разбора JWT токенов.
type Maker interface {
	// GenerateToken создаёт токен с subject=email и claim userId.
	GenerateToken(email string, userID int64) (string, error)
	// ParseToken возвращает *CustomClaims, если токен корректен.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	signingKey []byte        // Ключ подписи токенов.
	tokenTTL   time.Duration // Время жизни токена.
}

// NewMaker создаёт новый экземпляр MakerImpl на основе секрета и TTL.
//
// Секрет принимается либо как Base64-строка, либо как обычная строка:
// сначала выполняется попытка декодировать Base64, при неудаче
// используются сырые байты UTF-8.
func NewMaker(secret string, ttl time.Duration) *MakerImpl {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		key = []byte(secret)
	}
	return &MakerImpl{
		signingKey: key,
		tokenTTL:   ttl,
	}
}
