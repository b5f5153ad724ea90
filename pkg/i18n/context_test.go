package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/vetform/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
	assert.Equal(t, "en", i18n.GetLocale(i18n.SetLocale(context.Background(), "en")))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tr := newMapTranslator(t, map[string]map[string]any{
		"es": {"hola": "Hola"},
		"en": {"hola": "Hello"},
	})

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no header", "", "es"},
		{"exact match", "en", "en"},
		{"regional variant", "en-US,en;q=0.9", "en"},
		{"preferred spanish", "es-CL,en;q=0.5", "es"},
		{"unsupported language", "fr-FR", "es"},
		{"garbage", ";;;", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got string
			h := i18n.Middleware(tr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = i18n.GetLocale(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
