package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Статусы модерации статьи.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Author вложенный документ с данными автора статьи.
// Поле Email связывает статью с пользователем-создателем.
type Author struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Article представляет документ статьи в коллекции articles.
// ViewCount изменяется только атомарным инкрементом на стороне хранилища.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Publisher   string             `bson:"publisher,omitempty" json:"publisher,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Author      Author             `bson:"author" json:"author"`
	Status      string             `bson:"status" json:"status"` // pending, approved или declined
	IsPremium   bool               `bson:"isPremium" json:"isPremium"`
	ViewCount   int64              `bson:"viewCount" json:"viewCount"`
	Timestamp   int64              `bson:"timestamp" json:"timestamp"` // Момент публикации, Unix-миллисекунды
}

// DummyArticle используется для приёма данных новой статьи из JSON-запроса.
// Статус, счётчик просмотров и временная метка задаются сервером.
type DummyArticle struct {
	Title       string   `json:"title" validate:"required"`       // Заголовок
	Description string   `json:"description" validate:"required"` // Текст статьи
	Image       string   `json:"image"`
	Publisher   string   `json:"publisher"`
	Tags        []string `json:"tags"`
	Author      Author   `json:"author"`
}

// DummyModeration используется для приёма решения модератора:
// новый статус и пометка premium одним запросом.
type DummyModeration struct {
	Status    string `json:"status" validate:"required,oneof=pending approved declined"`
	IsPremium bool   `json:"isPremium"`
}

// DummyArticleUpdate используется для приёма правок автора:
// обновляются только заголовок и текст.
type DummyArticleUpdate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}
