package update

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

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, id string, req models.DummyArticleUpdate) (int64, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(int64), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := models.DummyArticleUpdate{
		Title:       "Updated title",
		Description: "Updated description",
	}

	tests := []struct {
		name           string
		id             string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное обновление статьи",
			id:          "64f1b2a3c4d5e6f7a8b9c0d1",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1", mock.AnythingOfType("models.DummyArticleUpdate")).
					Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Article updated successfully"`,
		},
		{
			name:        "статья не найдена",
			id:          "64f1b2a3c4d5e6f7a8b9c0d2",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d2", mock.AnythingOfType("models.DummyArticleUpdate")).
					Return(int64(0), nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"article not found"}`,
		},
		{
			name:           "некорректный JSON",
			id:             "64f1b2a3c4d5e6f7a8b9c0d1",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "ошибка валидации",
			id:             "64f1b2a3c4d5e6f7a8b9c0d1",
			requestBody:    models.DummyArticleUpdate{},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Title is a required field, field Description is a required field"}`,
		},
		{
			name:        "ошибка сервиса",
			id:          "64f1b2a3c4d5e6f7a8b9c0d1",
			requestBody: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1", mock.AnythingOfType("models.DummyArticleUpdate")).
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not update article"}`,
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

			req := httptest.NewRequest(http.MethodPut, "/articles/"+tt.id, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
