package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/insightarc/insightarc-server/internal/models"
)

// titleRegex фильтр по подстроке заголовка без учёта регистра.
func titleRegex(searchTerm string) bson.M {
	return bson.M{"$regex": searchTerm, "$options": "i"}
}

// SearchArticles возвращает статьи, чей заголовок содержит searchTerm
// (без учёта регистра). Пустая строка соответствует всем статьям.
func (s *Storage) SearchArticles(ctx context.Context, searchTerm string) ([]*models.Article, error) {
	const op = "storage.SearchArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Articles.Find(ctx, bson.M{"title": titleRegex(searchTerm)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SearchApprovedArticles возвращает одобренные статьи, чей заголовок
// содержит searchTerm (без учёта регистра).
func (s *Storage) SearchApprovedArticles(ctx context.Context, searchTerm string) ([]*models.Article, error) {
	const op = "storage.SearchApprovedArticles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Articles.Find(ctx, bson.M{
		"status": models.StatusApproved,
		"title":  titleRegex(searchTerm),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// LatestArticles возвращает limit последних статей по времени публикации.
func (s *Storage) LatestArticles(ctx context.Context, limit int64) ([]*models.Article, error) {
	const op = "storage.LatestArticles"
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := s.Articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// TrendingArticles возвращает limit статей с наибольшим числом просмотров.
func (s *Storage) TrendingArticles(ctx context.Context, limit int64) ([]*models.Article, error) {
	const op = "storage.TrendingArticles"
	opts := options.Find().
		SetSort(bson.D{{Key: "viewCount", Value: -1}}).
		SetLimit(limit)
	cur, err := s.Articles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ArticlesByAuthor возвращает статьи, где author.email совпадает с email.
func (s *Storage) ArticlesByAuthor(ctx context.Context, email string) ([]*models.Article, error) {
	const op = "storage.ArticlesByAuthor"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	cur, err := s.Articles.Find(ctx, bson.M{"author.email": email})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// PremiumArticles возвращает все статьи с пометкой premium.
func (s *Storage) PremiumArticles(ctx context.Context) ([]*models.Article, error) {
	const op = "storage.PremiumArticles"
	cur, err := s.Articles.Find(ctx, bson.M{"isPremium": true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result, err := all[models.Article](ctx, cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// FindArticleByID возвращает статью по ID или ErrNotFound.
func (s *Storage) FindArticleByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	const op = "storage.FindArticleByID"
	var article models.Article
	if err := s.Articles.FindOne(ctx, bson.M{"_id": id}).Decode(&article); err != nil {
		return nil, wrapNotFound(op, err)
	}
	return &article, nil
}

// InsertArticle вставляет новую статью и возвращает ID документа.
func (s *Storage) InsertArticle(ctx context.Context, article models.Article) (primitive.ObjectID, error) {
	const op = "storage.InsertArticle"
	res, err := s.Articles.InsertOne(ctx, article)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", op, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%s: unexpected inserted id type", op)
	}
	return id, nil
}

// ModerateArticle устанавливает статус модерации и пометку premium.
func (s *Storage) ModerateArticle(ctx context.Context, id primitive.ObjectID, status string, isPremium bool) (*mongo.UpdateResult, error) {
	const op = "storage.ModerateArticle"
	res, err := s.Articles.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":    status,
			"isPremium": isPremium,
		}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// IncrementViewCount атомарно увеличивает счётчик просмотров на единицу.
// Гонок read-modify-write нет: инкремент выполняется оператором $inc
// на стороне хранилища. Возвращает число найденных документов.
func (s *Storage) IncrementViewCount(ctx context.Context, id primitive.ObjectID) (int64, error) {
	const op = "storage.IncrementViewCount"
	res, err := s.Articles.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.MatchedCount, nil
}

// UpdateArticle обновляет заголовок и текст статьи,
// возвращает число изменённых документов.
func (s *Storage) UpdateArticle(ctx context.Context, id primitive.ObjectID, title, description string) (int64, error) {
	const op = "storage.UpdateArticle"
	res, err := s.Articles.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":       title,
			"description": description,
		}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.ModifiedCount, nil
}

// RemoveArticle удаляет статью по ID и возвращает число удалённых документов.
func (s *Storage) RemoveArticle(ctx context.Context, id primitive.ObjectID) (int64, error) {
	const op = "storage.RemoveArticle"
	res, err := s.Articles.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return res.DeletedCount, nil
}
