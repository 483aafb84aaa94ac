// Package article содержит бизнес-логику работы со статьями:
// публикация, выборки, модерация, правки и счётчик просмотров.
package article

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/models"
)

// Витринные лимиты главной страницы.
const (
	latestLimit   = 4
	trendingLimit = 6
)

// Repository определяет методы для работы со статьями в хранилище.
type Repository interface {
	SearchArticles(ctx context.Context, searchTerm string) ([]*models.Article, error)
	SearchApprovedArticles(ctx context.Context, searchTerm string) ([]*models.Article, error)
	LatestArticles(ctx context.Context, limit int64) ([]*models.Article, error)
	TrendingArticles(ctx context.Context, limit int64) ([]*models.Article, error)
	ArticlesByAuthor(ctx context.Context, email string) ([]*models.Article, error)
	PremiumArticles(ctx context.Context) ([]*models.Article, error)
	FindArticleByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error)
	InsertArticle(ctx context.Context, article models.Article) (primitive.ObjectID, error)
	ModerateArticle(ctx context.Context, id primitive.ObjectID, status string, isPremium bool) (*mongo.UpdateResult, error)
	IncrementViewCount(ctx context.Context, id primitive.ObjectID) (int64, error)
	UpdateArticle(ctx context.Context, id primitive.ObjectID, title, description string) (int64, error)
	RemoveArticle(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Service реализует бизнес-логику работы со статьями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create публикует новую статью от имени автора. Статья всегда создаётся
// в статусе pending с нулевым счётчиком просмотров.
func (s *Service) Create(ctx context.Context, req models.DummyArticle) (string, error) {
	article := models.Article{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Publisher:   req.Publisher,
		Tags:        req.Tags,
		Author:      req.Author,
		Status:      models.StatusPending,
		IsPremium:   false,
		ViewCount:   0,
		Timestamp:   time.Now().UnixMilli(),
	}
	id, err := s.repo.InsertArticle(ctx, article)
	if err != nil {
		return "", err
	}
	s.log.Info("created new article",
		slog.String("id", id.Hex()),
		slog.String("author", req.Author.Email))
	return id.Hex(), nil
}

// Search возвращает статьи по подстроке заголовка (без учёта регистра).
func (s *Service) Search(ctx context.Context, searchTerm string) ([]*models.Article, error) {
	return s.repo.SearchArticles(ctx, searchTerm)
}

// Approved возвращает одобренные статьи по подстроке заголовка.
func (s *Service) Approved(ctx context.Context, searchTerm string) ([]*models.Article, error) {
	return s.repo.SearchApprovedArticles(ctx, searchTerm)
}

// Latest возвращает четыре последние статьи.
func (s *Service) Latest(ctx context.Context) ([]*models.Article, error) {
	return s.repo.LatestArticles(ctx, latestLimit)
}

// Trending возвращает шесть самых просматриваемых статей.
func (s *Service) Trending(ctx context.Context) ([]*models.Article, error) {
	return s.repo.TrendingArticles(ctx, trendingLimit)
}

// ByAuthor возвращает статьи с данным email автора.
func (s *Service) ByAuthor(ctx context.Context, email string) ([]*models.Article, error) {
	return s.repo.ArticlesByAuthor(ctx, email)
}

// Premium возвращает статьи с пометкой premium.
func (s *Service) Premium(ctx context.Context) ([]*models.Article, error) {
	return s.repo.PremiumArticles(ctx)
}

// Read возвращает статью по её hex-идентификатору.
func (s *Service) Read(ctx context.Context, id string) (*models.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid article id: %w", err)
	}
	return s.repo.FindArticleByID(ctx, oid)
}

// Moderate устанавливает статус модерации и пометку premium,
// возвращая сырой результат обновления.
func (s *Service) Moderate(ctx context.Context, id string, req models.DummyModeration) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid article id: %w", err)
	}
	res, err := s.repo.ModerateArticle(ctx, oid, req.Status, req.IsPremium)
	if err != nil {
		return nil, err
	}
	s.log.Info("article moderated",
		slog.String("id", id),
		slog.String("status", req.Status),
		slog.Bool("is_premium", req.IsPremium))
	return res, nil
}

// IncrementView атомарно увеличивает счётчик просмотров.
// Возвращает число найденных документов: ноль означает,
// что статьи с таким ID нет.
func (s *Service) IncrementView(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid article id: %w", err)
	}
	return s.repo.IncrementViewCount(ctx, oid)
}

// Update обновляет заголовок и текст статьи,
// возвращает число изменённых документов.
func (s *Service) Update(ctx context.Context, id string, req models.DummyArticleUpdate) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid article id: %w", err)
	}
	return s.repo.UpdateArticle(ctx, oid, req.Title, req.Description)
}

// Remove удаляет статью по ID, возвращает число удалённых документов.
func (s *Service) Remove(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid article id: %w", err)
	}
	return s.repo.RemoveArticle(ctx, oid)
}
