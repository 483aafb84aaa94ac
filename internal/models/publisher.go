package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publisher представляет документ издателя в коллекции publishers.
// Издатели только создаются и читаются, путей обновления и удаления нет.
type Publisher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Logo      string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Timestamp int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"`
}

// DummyPublisher используется для приёма данных нового издателя из JSON-запроса.
type DummyPublisher struct {
	Name string `json:"name" validate:"required"` // Название издателя
	Logo string `json:"logo"`                     // URL логотипа
}
