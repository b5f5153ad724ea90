package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/vetform/pkg/validator"
)

// DefaultLanguage is the language of the bundled catalogue.
const DefaultLanguage = "es"

// Translator resolves dot-notation keys against loaded translations.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
	mu             sync.RWMutex
}

// NewTranslator creates a new Translator instance with the given adapter and options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, trans := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if trans == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// DefaultLanguage returns the language used when a requested one is missing.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// SupportedLanguages returns a list of language codes that have translations available.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// T translates a key for the given language. Arguments are key-value pairs
// substituted into %{name} placeholders. Unknown languages fall back to the
// default language; unknown keys return the key itself.
//
//	msg := tr.T("es", "validation.name.too_short", "min", "2")
//	// "El nombre debe tener al menos 2 caracteres."
func (t *Translator) T(lang, key string, args ...string) string {
	return t.Td(lang, key, key, args...)
}

// Td is like T but returns defaultValue (with substitutions applied) when
// the key cannot be resolved.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	return t.translate(lang, key, defaultValue, pairs(args))
}

// Outcome renders the message of a validation outcome in lang. Placeholder
// values come from the outcome's TranslationValues; numbers are grouped the
// way lang writes them. Outcomes without a key, or whose key is missing,
// keep their own message.
func (t *Translator) Outcome(lang string, o validator.Outcome) string {
	if o.Severity == validator.SeverityNone {
		return ""
	}
	if o.TranslationKey == "" {
		return o.Message
	}
	return t.translate(lang, o.TranslationKey, o.Message, t.formatValues(lang, o.TranslationValues))
}

func (t *Translator) translate(lang, key, defaultValue string, params map[string]string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		langMap, ok = t.translations[t.defaultLang]
	}
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Language not supported", "lang", lang, "key", key)
		}
		return namedSprintf(defaultValue, params)
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation not found", "lang", lang, "key", key)
		}
		return namedSprintf(defaultValue, params)
	}

	strVal, ok := val.(string)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("Translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return namedSprintf(defaultValue, params)
	}

	return namedSprintf(strVal, params)
}

func (t *Translator) formatValues(lang string, values map[string]any) map[string]string {
	if len(values) == 0 {
		return nil
	}

	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Make(t.defaultLang)
	}
	p := message.NewPrinter(tag)

	params := make(map[string]string, len(values))
	for k, v := range values {
		switch n := v.(type) {
		case int, int64, int32, uint, uint64, uint32:
			params[k] = p.Sprintf("%d", n)
		case float64, float32:
			params[k] = p.Sprintf("%v", n)
		default:
			params[k] = fmt.Sprint(v)
		}
	}
	return params
}

// lookup traverses a nested map using dot-separated keys.
// For example, "validation.name.valid" visits m["validation"]["name"]["valid"].
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		next, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return next, true
		}

		switch nm := next.(type) {
		case map[string]any:
			current = nm
		case map[any]any:
			current = make(map[string]any, len(nm))
			for k, v := range nm {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// pairs converts key, value, key, value... into a map.
// If the number of arguments is odd, the last one is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// Regex to find named parameters in the form %{name}
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{key} placeholders. Unknown placeholders are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := params[name]; ok {
			return val
		}
		return match
	})
}
