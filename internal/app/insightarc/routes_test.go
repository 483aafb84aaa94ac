package insightarc

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/cache"
	"github.com/insightarc/insightarc-server/internal/config"
	"github.com/insightarc/insightarc-server/internal/lib/authcookie"
	"github.com/insightarc/insightarc-server/internal/lib/jwt"
	"github.com/insightarc/insightarc-server/internal/models"
	articleservice "github.com/insightarc/insightarc-server/internal/services/article"
	publisherservice "github.com/insightarc/insightarc-server/internal/services/publisher"
	subscriptionservice "github.com/insightarc/insightarc-server/internal/services/subscription"
	userservice "github.com/insightarc/insightarc-server/internal/services/user"
)

// Заглушки хранилища: роутинговым тестам важны только статусы ответов,
// поэтому методы возвращают пустые успешные результаты.

type stubArticleRepo struct{}

func (stubArticleRepo) SearchArticles(_ context.Context, _ string) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) SearchApprovedArticles(_ context.Context, _ string) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) LatestArticles(_ context.Context, _ int64) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) TrendingArticles(_ context.Context, _ int64) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) ArticlesByAuthor(_ context.Context, _ string) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) PremiumArticles(_ context.Context) ([]*models.Article, error) {
	return nil, nil
}

func (stubArticleRepo) FindArticleByID(_ context.Context, _ primitive.ObjectID) (*models.Article, error) {
	return &models.Article{}, nil
}

func (stubArticleRepo) InsertArticle(_ context.Context, _ models.Article) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (stubArticleRepo) ModerateArticle(_ context.Context, _ primitive.ObjectID, _ string, _ bool) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (stubArticleRepo) IncrementViewCount(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 1, nil
}

func (stubArticleRepo) UpdateArticle(_ context.Context, _ primitive.ObjectID, _, _ string) (int64, error) {
	return 1, nil
}

func (stubArticleRepo) RemoveArticle(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 1, nil
}

type stubUserRepo struct{}

func (stubUserRepo) ListUsers(_ context.Context) ([]*models.User, error) { return nil, nil }

func (stubUserRepo) ListUsersExcept(_ context.Context, _ string) ([]*models.User, error) {
	return nil, nil
}

func (stubUserRepo) CountUsers(_ context.Context) (int64, error) { return 0, nil }

func (stubUserRepo) CountPremiumUsers(_ context.Context) (int64, error) { return 0, nil }

func (stubUserRepo) FindUserByEmail(_ context.Context, _ string) (*models.User, error) {
	return &models.User{}, nil
}

func (stubUserRepo) InsertUser(_ context.Context, _ models.User) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (stubUserRepo) UpdateUserRole(_ context.Context, _, _ string) (int64, error) { return 1, nil }

func (stubUserRepo) ActivateSubscription(_ context.Context, _ primitive.ObjectID, _ string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type stubPublisherRepo struct{}

func (stubPublisherRepo) InsertPublisher(_ context.Context, _ models.Publisher) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (stubPublisherRepo) ListPublishers(_ context.Context) ([]*models.Publisher, error) {
	return nil, nil
}

type stubSubscriptionRepo struct{}

func (stubSubscriptionRepo) ListSubscriptions(_ context.Context) ([]*models.Subscription, error) {
	return nil, nil
}

func (stubSubscriptionRepo) FindSubscriptionByID(_ context.Context, _ primitive.ObjectID) (*models.Subscription, error) {
	return &models.Subscription{}, nil
}

func newTestRouter(t *testing.T) (chi.Router, jwt.Maker) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	maker := jwt.NewJWTMaker("test-secret", time.Hour)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, maker,
		userservice.New(stubUserRepo{}, logger),
		articleservice.New(stubArticleRepo{}, logger),
		publisherservice.New(stubPublisherRepo{}, logger),
		subscriptionservice.New(stubSubscriptionRepo{}, (*cache.Cache)(nil), logger),
	)
	return router, maker
}

func TestViewRouteIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	// Счётчик просмотров инкрементируется и без cookie
	req := httptest.NewRequest(http.MethodPatch, "/articles/64f1b2a3c4d5e6f7a8b9c0d1/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "View count updated")
}

func TestProtectedRoutesRejectMissingCookie(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		url    string
	}{
		{name: "правка статьи", method: http.MethodPut, url: "/articles/64f1b2a3c4d5e6f7a8b9c0d1"},
		{name: "модерация статьи", method: http.MethodPatch, url: "/articles/64f1b2a3c4d5e6f7a8b9c0d1"},
		{name: "премиум-статьи", method: http.MethodGet, url: "/premium-articles"},
		{name: "активация подписки", method: http.MethodPost, url: "/update-subscription"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "unauthorized access")
		})
	}
}

func TestProtectedRouteAcceptsValidCookie(t *testing.T) {
	router, maker := newTestRouter(t)

	token, err := maker.GenerateToken("user@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/premium-articles", nil)
	req.AddCookie(&http.Cookie{Name: authcookie.Name, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
