package authcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		prod         bool
		wantSecure   bool
		wantSameSite http.SameSite
	}{
		{
			name:         "local environment",
			prod:         false,
			wantSecure:   false,
			wantSameSite: http.SameSiteStrictMode,
		},
		{
			name:         "production environment",
			prod:         true,
			wantSecure:   true,
			wantSameSite: http.SameSiteNoneMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Set(w, "some.jwt.token", time.Hour, tt.prod)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)

			c := cookies[0]
			assert.Equal(t, Name, c.Name)
			assert.Equal(t, "some.jwt.token", c.Value)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, tt.wantSecure, c.Secure)
			assert.Equal(t, tt.wantSameSite, c.SameSite)
			assert.WithinDuration(t, time.Now().Add(time.Hour), c.Expires, 5*time.Second)
		})
	}
}

func TestClear(t *testing.T) {
	w := httptest.NewRecorder()
	Clear(w, false)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, Name, c.Name)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
