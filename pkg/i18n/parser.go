package i18n

import "context"

// Parser turns the content of one translation file into a map keyed by
// language code.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension accepts extensions with or without a leading dot.
	SupportsFileExtension(ext string) bool
}
