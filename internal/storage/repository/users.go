package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/models"
)

// ListUsers возвращает всех пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.User](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListUsersExcept возвращает всех пользователей, кроме указанного email.
func (s *Storage) ListUsersExcept(ctx context.Context, email string) ([]*models.User, error) {
	const op = "storage.ListUsersExcept"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Users.Find(ctx, bson.M{"email": bson.M{"$ne": email}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.User](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountUsers возвращает общее число пользователей.
func (s *Storage) CountUsers(ctx context.Context) (int64, error) {
	const op = "storage.CountUsers"
	count, err := s.Users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountPremiumUsers возвращает число пользователей с активной подпиской.
func (s *Storage) CountPremiumUsers(ctx context.Context) (int64, error) {
	const op = "storage.CountPremiumUsers"
	count, err := s.Users.CountDocuments(ctx, bson.M{"userHasSubscription": true})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// FindUserByEmail возвращает пользователя по email или ErrNotFound.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var user models.User
	if err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, wrapNotFound(op, err)
	}
	return &user, nil
}

// InsertUser вставляет нового пользователя и возвращает ID документа.
// Уникальность email обеспечивается проверкой существования на уровне
// сервиса перед вставкой, а не индексом хранилища.
func (s *Storage) InsertUser(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	const op = "storage.InsertUser"
	res, err := s.Users.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return id, nil
}

// UpdateUserRole устанавливает роль пользователя по email
// и возвращает число изменённых документов.
func (s *Storage) UpdateUserRole(ctx context.Context, email, role string) (int64, error) {
	const op = "storage.UpdateUserRole"
	res, err := s.Users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount, nil
}

// ActivateSubscription помечает пользователя как владельца подписки
// с выбранным периодом. Обновление идемпотентно: повторный запрос
// записывает те же значения.
func (s *Storage) ActivateSubscription(ctx context.Context, userID primitive.ObjectID, period string) (*mongo.UpdateResult, error) {
	const op = "storage.ActivateSubscription"
	res, err := s.Users.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"userHasSubscription": true,
			"premiumTaken":        period,
		}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}
