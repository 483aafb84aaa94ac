package listother

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/insightarc/insightarc-server/internal/http/middlewarectx"
	"github.com/insightarc/insightarc-server/internal/models"
)

// MockService реализует интерфейс listother.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListExcept(ctx context.Context, email string) ([]*models.User, error) {
	args := m.Called(ctx, email)
	var users []*models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]*models.User)
	}
	return users, args.Error(1)
}

func TestListOtherHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		pathEmail      string
		claimEmail     string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:       "успешный список без вызывающего",
			pathEmail:  "user@example.com",
			claimEmail: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("ListExcept", mock.Anything, "user@example.com").
					Return([]*models.User{
						{Name: "Other One", Email: "one@example.com", Role: "user"},
						{Name: "Other Two", Email: "two@example.com", Role: "admin"},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"one@example.com"`,
		},
		{
			name:           "нет email в контексте",
			pathEmail:      "user@example.com",
			claimEmail:     "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized access"}`,
		},
		{
			name:           "email в пути не совпадает с токеном",
			pathEmail:      "victim@example.com",
			claimEmail:     "attacker@example.com",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:       "ошибка сервиса",
			pathEmail:  "user@example.com",
			claimEmail: "user@example.com",
			setupMock: func(m *MockService) {
				m.On("ListExcept", mock.Anything, "user@example.com").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not list users"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/all-users/"+tt.pathEmail, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			if tt.claimEmail != "" {
				ctx = context.WithValue(ctx, middlewarectx.Email, tt.claimEmail)
			}
			req = req.WithContext(ctx)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.pathEmail)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
