package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in dir that the parser supports.
// Translations from several files are merged per language.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter creates a new FSAdapter instance.
// Returns nil if parser or fsys is nil, or dir is empty.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	var errs []error
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := path.Ext(entry.Name())
		if ext == "" || !a.parser.SupportsFileExtension(ext) {
			continue
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.processFile(ctx, filePath, all); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", filePath, err))
			continue
		}
		loaded++
	}

	if loaded == 0 {
		errs = append([]error{fmt.Errorf("%w in '%s'", ErrNoTranslationFiles, a.dir)}, errs...)
		return nil, errors.Join(errs...)
	}

	return all, nil
}

func (a *FSAdapter) processFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadEmbeddedFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("translation file '%s' is empty", filePath)
	}

	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseEmbeddedFile, err)
	}

	for lang, translations := range parsed {
		if all[lang] == nil {
			all[lang] = make(map[string]any)
		}
		maps.Copy(all[lang], translations)
	}

	return nil
}
