package i18n

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns a map of translations
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid YAML structure for language '%s': expected map, got %T", lang, val)
		}
		result[lang] = transMap
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("no valid translations found in YAML content")
	}

	return result, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
