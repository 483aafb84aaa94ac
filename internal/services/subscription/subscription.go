// Package subscription содержит бизнес-логику каталога тарифов подписки,
// включая кэширование. Каталог только читается со стороны клиента,
// поэтому кэш с коротким TTL не может отдать противоречивые данные.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/insightarc/insightarc-server/internal/lib/sl"
	"github.com/insightarc/insightarc-server/internal/models"
)

const cacheTTL = 5 * time.Minute

// Repository определяет методы для работы с каталогом тарифов в хранилище.
type Repository interface {
	ListSubscriptions(ctx context.Context) ([]*models.Subscription, error)
	FindSubscriptionByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кэша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кэш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// Service реализует бизнес-логику каталога тарифов с кэшированием.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// List возвращает каталог тарифов, используя кэш или хранилище.
// Ошибки кэша не фатальны: чтение продолжается напрямую из хранилища.
func (s *Service) List(ctx context.Context) ([]*models.Subscription, error) {
	const cacheKey = "subscriptions:catalog"

	var cached []*models.Subscription
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read subscriptions from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.ListSubscriptions(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache subscriptions", sl.Err(err))
	}
	return result, nil
}

// Read возвращает тариф по hex-идентификатору, используя кэш или хранилище.
func (s *Service) Read(ctx context.Context, id string) (*models.Subscription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription id: %w", err)
	}

	cacheKey := fmt.Sprintf("subscription:%s", id)
	var cached *models.Subscription
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read subscription from cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	result, err := s.repo.FindSubscriptionByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}
