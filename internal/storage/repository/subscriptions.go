package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/insightarc/insightarc-server/internal/models"
)

// ListSubscriptions возвращает весь каталог тарифов подписки.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Subscriptions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Subscription](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindSubscriptionByID возвращает тариф по ID или ErrNotFound.
func (s *Storage) FindSubscriptionByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	const op = "storage.FindSubscriptionByID"
	var sub models.Subscription
	if err := s.Subscriptions.FindOne(ctx, bson.M{"_id": id}).Decode(&sub); err != nil {
		return nil, wrapNotFound(op, err)
	}
	return &sub, nil
}
