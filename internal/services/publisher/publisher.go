// Package publisher содержит бизнес-логику работы с издателями.
// Издатели только создаются и читаются.
package publisher

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/insightarc/insightarc-server/internal/models"
)

// Repository определяет методы для работы с издателями в хранилище.
type Repository interface {
	InsertPublisher(ctx context.Context, publisher models.Publisher) (primitive.ObjectID, error)
	ListPublishers(ctx context.Context) ([]*models.Publisher, error)
}

// Service реализует бизнес-логику работы с издателями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create добавляет нового издателя и возвращает его hex-идентификатор.
func (s *Service) Create(ctx context.Context, req models.DummyPublisher) (string, error) {
	id, err := s.repo.InsertPublisher(ctx, models.Publisher{
		Name:      req.Name,
		Logo:      req.Logo,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	s.log.Info("created new publisher", slog.String("name", req.Name))
	return id.Hex(), nil
}

// List возвращает всех издателей.
func (s *Service) List(ctx context.Context) ([]*models.Publisher, error) {
	return s.repo.ListPublishers(ctx)
}
