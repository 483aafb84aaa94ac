package upsert

import (
	"bytes"
	"context"
	"encoding/json"
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

	"github.com/insightarc/insightarc-server/internal/models"
)

// MockService реализует интерфейс upsert.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Upsert(ctx context.Context, email string, req models.DummyUser) (*models.User, bool, error) {
	args := m.Called(ctx, email, req)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Bool(1), args.Error(2)
}

func TestUpsertHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	existing := &models.User{
		Name:  "Existing User",
		Email: "user@example.com",
		Role:  "admin",
	}

	tests := []struct {
		name           string
		email          string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "пользователь уже существует",
			email: "user@example.com",
			requestBody: models.DummyUser{
				Name:  "New Name",
				Photo: "photo.png",
			},
			setupMock: func(m *MockService) {
				m.On("Upsert", mock.Anything, "user@example.com", mock.AnythingOfType("models.DummyUser")).
					Return(existing, false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"created":false`,
		},
		{
			name:  "новый пользователь создан",
			email: "fresh@example.com",
			requestBody: models.DummyUser{
				Name:  "Fresh User",
				Photo: "",
			},
			setupMock: func(m *MockService) {
				created := &models.User{
					Name:  "Fresh User",
					Email: "fresh@example.com",
					Role:  "user",
				}
				m.On("Upsert", mock.Anything, "fresh@example.com", mock.AnythingOfType("models.DummyUser")).
					Return(created, true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"created":true`,
		},
		{
			name:           "некорректный JSON",
			email:          "user@example.com",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "некорректный email в пути",
			email:          "not-an-email",
			requestBody:    models.DummyUser{Name: "User"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email must be a valid email"}`,
		},
		{
			name:        "ошибка сервиса",
			email:       "user@example.com",
			requestBody: models.DummyUser{Name: "User"},
			setupMock: func(m *MockService) {
				m.On("Upsert", mock.Anything, "user@example.com", mock.AnythingOfType("models.DummyUser")).
					Return(nil, false, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not save user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/users/"+tt.email, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.email)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
