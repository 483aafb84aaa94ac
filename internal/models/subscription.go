package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription представляет тариф подписки в коллекции subscriptions.
// Это элемент каталога, а не запись о покупке: со стороны клиента
// коллекция только читается, "покупка" изменяет документ пользователя.
type Subscription struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title    string             `bson:"title" json:"title"`       // Название тарифа
	Period   string             `bson:"period" json:"period"`     // Период действия, например "monthly"
	Price    float64            `bson:"price" json:"price"`       // Цена за период
	Features []string           `bson:"features,omitempty" json:"features,omitempty"`
}
