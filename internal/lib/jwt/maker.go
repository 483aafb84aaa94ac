// Package jwt реализует генерацию и парсинг JWT токенов с email пользователя в claims.
//
// Maker определяет интерфейс для выпуска и проверки токенов.
// MakerImpl — конкретная реализация с использованием секретного ключа и срока жизни.
//
// Отзыва токенов нет: выпущенный токен остаётся действительным весь срок
// жизни независимо от изменений роли или подписки на сервере.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создаёт токен с email пользователя
	GenerateToken(email string) (string, error)
	// ParseToken возвращает *CustomClaims с email
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
