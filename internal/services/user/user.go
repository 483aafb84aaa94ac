// Package user содержит бизнес-логику работы с пользователями:
// списки, статистика, upsert при первом входе, роли и активация подписки.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/models"
	"github.com/insightarc/insightarc-server/internal/storage/repository"
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// ListUsersExcept возвращает всех пользователей, кроме указанного email.
	ListUsersExcept(ctx context.Context, email string) ([]*models.User, error)
	// CountUsers возвращает общее число пользователей.
	CountUsers(ctx context.Context) (int64, error)
	// CountPremiumUsers возвращает число пользователей с подпиской.
	CountPremiumUsers(ctx context.Context) (int64, error)
	// FindUserByEmail возвращает пользователя по email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// InsertUser вставляет нового пользователя.
	InsertUser(ctx context.Context, user models.User) (primitive.ObjectID, error)
	// UpdateUserRole устанавливает роль пользователя.
	UpdateUserRole(ctx context.Context, email, role string) (int64, error)
	// ActivateSubscription включает подписку на документе пользователя.
	ActivateSubscription(ctx context.Context, userID primitive.ObjectID, period string) (*mongo.UpdateResult, error)
}

// Service реализует бизнес-логику работы с пользователями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// ListExcept возвращает всех пользователей, кроме вызывающего.
func (s *Service) ListExcept(ctx context.Context, email string) ([]*models.User, error) {
	return s.repo.ListUsersExcept(ctx, email)
}

// Stats считает агрегаты по пользователям двумя count-запросами;
// число обычных пользователей выводится вычитанием, поэтому
// normal + premium == total при любом состоянии данных.
func (s *Service) Stats(ctx context.Context) (*models.UsersStat, error) {
	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	premium, err := s.repo.CountPremiumUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &models.UsersStat{
		TotalUsers:   total,
		NormalUsers:  total - premium,
		PremiumUsers: premium,
	}, nil
}

// Read возвращает пользователя по email.
func (s *Service) Read(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindUserByEmail(ctx, email)
}

// Upsert сохраняет пользователя при первом входе. Если пользователь с таким
// email уже существует, возвращает его без изменений; иначе вставляет нового
// с ролью "user" и без подписки. Проверка существования и вставка — два
// отдельных запроса, поэтому гонка одновременных первых входов одного
// email не исключена.
func (s *Service) Upsert(ctx context.Context, email string, req models.DummyUser) (*models.User, bool, error) {
	existing, err := s.repo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	user := models.User{
		Name:                req.Name,
		Email:               email,
		Photo:               req.Photo,
		Role:                "user",
		UserHasSubscription: false,
		PremiumTaken:        "",
		Timestamp:           time.Now().UnixMilli(),
	}
	id, err := s.repo.InsertUser(ctx, user)
	if err != nil {
		return nil, false, err
	}
	user.ID = id

	s.log.Info("registered new user", slog.String("email", email))
	return &user, true, nil
}

// UpdateRole устанавливает роль пользователя и возвращает
// число изменённых документов.
func (s *Service) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	return s.repo.UpdateUserRole(ctx, email, role)
}

// ReadRole возвращает роль пользователя по email.
func (s *Service) ReadRole(ctx context.Context, email string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// ActivateSubscription включает подписку у пользователя с данным ID.
// Платёжной верификации нет: обновление безусловное и идемпотентное.
func (s *Service) ActivateSubscription(ctx context.Context, userID, period string) (*mongo.UpdateResult, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	res, err := s.repo.ActivateSubscription(ctx, id, period)
	if err != nil {
		return nil, err
	}
	s.log.Info("subscription activated",
		slog.String("user_id", userID),
		slog.String("period", period))
	return res, nil
}
