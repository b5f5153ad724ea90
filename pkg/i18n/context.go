package i18n

import (
	"context"
	"net/http"

	"golang.org/x/text/language"
)

// localeContextKey is the key for storing locale in context
type localeContextKey struct{}

// SetLocale sets the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale from the context, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// Middleware negotiates the request language from Accept-Language against
// the translator's languages and stores it with SetLocale.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	supported := t.SupportedLanguages()
	tags := make([]language.Tag, 0, len(supported)+1)
	// The first tag is the matcher's fallback.
	tags = append(tags, language.Make(t.DefaultLanguage()))
	for _, lang := range supported {
		if lang != t.DefaultLanguage() {
			tags = append(tags, language.Make(lang))
		}
	}
	matcher := language.NewMatcher(tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.DefaultLanguage()
			if accept := r.Header.Get("Accept-Language"); accept != "" {
				_, idx, conf := matcher.Match(parseAccept(accept)...)
				if conf != language.No {
					base, _ := tags[idx].Base()
					lang = base.String()
				}
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// maxAcceptLanguageLength bounds the parsed header.
const maxAcceptLanguageLength = 4096

func parseAccept(header string) []language.Tag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}
	return tags
}
