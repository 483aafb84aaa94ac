package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/insightarc/insightarc-server/internal/models"
)

// InsertPublisher вставляет нового издателя и возвращает ID документа.
func (s *Storage) InsertPublisher(ctx context.Context, publisher models.Publisher) (primitive.ObjectID, error) {
	const op = "storage.InsertPublisher"
	res, err := s.Publishers.InsertOne(ctx, publisher)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return id, nil
}

// ListPublishers возвращает всех издателей.
func (s *Storage) ListPublishers(ctx context.Context) ([]*models.Publisher, error) {
	const op = "storage.ListPublishers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Publishers.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Publisher](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
