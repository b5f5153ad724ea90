package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{
			name:     "SSE Accept header",
			headers:  map[string]string{"Accept": "text/event-stream"},
			expected: true,
		},
		{
			name:     "SSE Accept header with other values",
			headers:  map[string]string{"Accept": "text/html, text/event-stream, */*"},
			expected: true,
		},
		{
			name:     "Datastar-Request header",
			headers:  map[string]string{"Datastar-Request": "true"},
			expected: true,
		},
		{
			name:     "Datastar-Request header false",
			headers:  map[string]string{"Datastar-Request": "false", "Accept": "text/html"},
			expected: false,
		},
		{
			name:     "plain form post with datastar query",
			query:    "?datastar=1",
			headers:  map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
			expected: false,
		},
		{
			name:     "Regular request",
			headers:  map[string]string{"Accept": "text/html"},
			expected: false,
		},
		{
			name:     "No headers",
			headers:  map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			result := handler.IsDataStar(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRedirectResponseWithDataStar(t *testing.T) {
	t.Parallel()

	t.Run("DataStar redirect", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/forms/pet", nil)
		req.Header.Set("Accept", "text/event-stream")

		w := httptest.NewRecorder()
		resp := handler.Redirect("/forms/pet/done")
		err := resp.Render(w, req)
		require.NoError(t, err)

		// Check for SSE response
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "/forms/pet/done")
	})

	t.Run("Regular redirect", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/forms/pet", nil)

		w := httptest.NewRecorder()
		resp := handler.Redirect("/forms/pet/done")
		err := resp.Render(w, req)
		require.NoError(t, err)

		// Check for standard HTTP redirect
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/forms/pet/done", w.Header().Get("Location"))
	})
}
