package view

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
)

// MockService реализует интерфейс view.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) IncrementView(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestViewHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "счётчик увеличен",
			id:   "64f1b2a3c4d5e6f7a8b9c0d1",
			setupMock: func(m *MockService) {
				m.On("IncrementView", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1").
					Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"View count updated"`,
		},
		{
			name: "статья не найдена",
			id:   "64f1b2a3c4d5e6f7a8b9c0d2",
			setupMock: func(m *MockService) {
				m.On("IncrementView", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d2").
					Return(int64(0), nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"article not found"}`,
		},
		{
			name: "ошибка сервиса",
			id:   "64f1b2a3c4d5e6f7a8b9c0d1",
			setupMock: func(m *MockService) {
				m.On("IncrementView", mock.Anything, "64f1b2a3c4d5e6f7a8b9c0d1").
					Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not update view count"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/articles/"+tt.id+"/view", nil)
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
