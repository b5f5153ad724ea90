package i18n

import (
	"context"
	"embed"
)

//go:embed translations/*.yaml
var bundled embed.FS

// Bundled returns a translator over the catalogues shipped with the module.
func Bundled(ctx context.Context, opts ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), bundled, "translations"), opts...)
}

// MustBundled is like Bundled but panics on error.
func MustBundled(ctx context.Context, opts ...Option) *Translator {
	t, err := Bundled(ctx, opts...)
	if err != nil {
		panic(err)
	}
	return t
}
