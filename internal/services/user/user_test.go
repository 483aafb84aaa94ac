package user

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/insightarc/insightarc-server/internal/models"
	"github.com/insightarc/insightarc-server/internal/storage/repository"
)

// MockRepository реализует интерфейс user.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListUsersExcept(ctx context.Context, email string) ([]*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.([]*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountPremiumUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) InsertUser(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockRepository) UpdateUserRole(ctx context.Context, email, role string) (int64, error) {
	args := m.Called(ctx, email, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ActivateSubscription(ctx context.Context, userID primitive.ObjectID, period string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, userID, period)
	if res := args.Get(0); res != nil {
		return res.(*mongo.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService(repo Repository) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(repo, logger)
}

func TestService_Stats_Invariant(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		premium     int64
		wantNormal  int64
	}{
		{name: "mixed users", total: 10, premium: 3, wantNormal: 7},
		{name: "no users", total: 0, premium: 0, wantNormal: 0},
		{name: "all premium", total: 5, premium: 5, wantNormal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("CountUsers", mock.Anything).Return(tt.total, nil)
			repo.On("CountPremiumUsers", mock.Anything).Return(tt.premium, nil)

			stat, err := newTestService(repo).Stats(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.total, stat.TotalUsers)
			assert.Equal(t, tt.premium, stat.PremiumUsers)
			assert.Equal(t, tt.wantNormal, stat.NormalUsers)
			assert.Equal(t, stat.TotalUsers, stat.NormalUsers+stat.PremiumUsers)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Upsert(t *testing.T) {
	existing := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "reader@example.com",
		Role:  "admin",
	}

	t.Run("existing user is returned unchanged", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindUserByEmail", mock.Anything, "reader@example.com").Return(existing, nil)

		user, created, err := newTestService(repo).Upsert(context.Background(),
			"reader@example.com", models.DummyUser{Email: "reader@example.com"})
		require.NoError(t, err)

		assert.False(t, created)
		assert.Same(t, existing, user)
		// вставка не вызывалась
		repo.AssertNotCalled(t, "InsertUser", mock.Anything, mock.Anything)
	})

	t.Run("new user gets defaults", func(t *testing.T) {
		newID := primitive.NewObjectID()
		repo := new(MockRepository)
		repo.On("FindUserByEmail", mock.Anything, "new@example.com").
			Return(nil, repository.ErrNotFound)
		repo.On("InsertUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "new@example.com" &&
				u.Role == "user" &&
				!u.UserHasSubscription &&
				u.PremiumTaken == "" &&
				u.Timestamp > 0
		})).Return(newID, nil)

		user, created, err := newTestService(repo).Upsert(context.Background(),
			"new@example.com", models.DummyUser{Name: "New", Email: "new@example.com"})
		require.NoError(t, err)

		assert.True(t, created)
		assert.Equal(t, newID, user.ID)
		assert.Equal(t, "user", user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindUserByEmail", mock.Anything, "reader@example.com").
			Return(nil, errors.New("connection reset"))

		_, _, err := newTestService(repo).Upsert(context.Background(),
			"reader@example.com", models.DummyUser{Email: "reader@example.com"})
		assert.Error(t, err)
	})
}

func TestService_ActivateSubscription(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := newTestService(repo).ActivateSubscription(context.Background(), "not-a-hex", "monthly")
		assert.Error(t, err)
		repo.AssertNotCalled(t, "ActivateSubscription", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid id passes through", func(t *testing.T) {
		oid := primitive.NewObjectID()
		repo := new(MockRepository)
		repo.On("ActivateSubscription", mock.Anything, oid, "monthly").
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

		res, err := newTestService(repo).ActivateSubscription(context.Background(), oid.Hex(), "monthly")
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.MatchedCount)
		repo.AssertExpectations(t)
	})
}
