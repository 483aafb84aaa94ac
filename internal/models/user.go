// Package models содержит доменные структуры платформы: пользователи,
// статьи, издатели и тарифы подписки, а также вспомогательные типы
// для приёма данных из JSON-запросов.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User представляет документ пользователя в коллекции users.
// Email является естественным ключом: два пользователя не могут
// использовать один адрес (проверяется на уровне приложения перед вставкой).
type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name                string             `bson:"name,omitempty" json:"name,omitempty"`         // Отображаемое имя
	Email               string             `bson:"email" json:"email"`                           // Электронная почта (уникальная)
	Photo               string             `bson:"photo,omitempty" json:"photo,omitempty"`       // URL аватара
	Role                string             `bson:"role" json:"role"`                             // Роль пользователя, admin или user
	UserHasSubscription bool               `bson:"userHasSubscription" json:"userHasSubscription"`
	PremiumTaken        string             `bson:"premiumTaken" json:"premiumTaken"` // Выбранный период подписки ("" если нет)
	Timestamp           int64              `bson:"timestamp" json:"timestamp"`       // Момент первой регистрации, Unix-миллисекунды
}

// UsersStat агрегированная статистика по пользователям.
// Инвариант: NormalUsers + PremiumUsers == TotalUsers.
type UsersStat struct {
	TotalUsers   int64 `json:"totalUsers"`
	NormalUsers  int64 `json:"normalUsers"`
	PremiumUsers int64 `json:"premiumUsers"`
}

// DummyLogin используется для приёма identity-запроса на выпуск токена.
type DummyLogin struct {
	Email string `json:"email" validate:"required,email"` // Заявленная электронная почта
}

// DummyUser используется для приёма данных пользователя из JSON-запроса
// при первом входе, прежде чем дополнить их серверными полями по умолчанию.
type DummyUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"` // Электронная почта
	Photo string `json:"photo"`
}

// DummyRole используется для приёма новой роли пользователя из JSON-запроса.
type DummyRole struct {
	Role string `json:"role" validate:"required,oneof=user admin"` // Новая роль
}

// DummyPurchase используется для приёма данных активации подписки.
// SubscriptionPeriod записывается в premiumTaken как есть.
type DummyPurchase struct {
	UserID             string `json:"userId" validate:"required"`             // ID документа пользователя
	SubscriptionPeriod string `json:"subscriptionPeriod" validate:"required"` // Выбранный период
}
