package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter = errors.New("translation adapter is nil")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// Embedded filesystem operations
	ErrLoadingTranslationsCancelled  = errors.New("loading translations canceled before starting")
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded directory")
	ErrFailedToReadEmbeddedFile      = errors.New("failed to read embedded translation file")
	ErrFailedToParseEmbeddedFile     = errors.New("failed to parse embedded translation file")
	ErrNoTranslationFiles            = errors.New("no valid translation files found")
)

// ErrLanguageNotSupported indicates that the requested language is not available
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Lang)
}
