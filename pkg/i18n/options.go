package i18n

import "log/slog"

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one is not loaded.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger provides a customizable logger for the translator.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations
// are logged. Default is false to avoid excessive logging.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}
