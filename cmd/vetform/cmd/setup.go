package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/vetform/pkg/config"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/i18n"
	"github.com/dmitrymomot/vetform/pkg/logger"
)

const serviceName = "vetform"

// deps are the components shared by the commands.
type deps struct {
	app        config.App
	log        *slog.Logger
	translator *i18n.Translator
	checker    *field.Checker
}

func setup(ctx context.Context, opts ...field.Option) (*deps, error) {
	var app config.App
	if err := config.Load(&app); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, serviceName),
		logger.WithLevelName(app.LogLevel),
	)

	loc, err := app.Location()
	if err != nil {
		return nil, err
	}

	tr, err := i18n.Bundled(ctx,
		i18n.WithDefaultLanguage(app.Lang),
		i18n.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	return &deps{
		app:        app,
		log:        log,
		translator: tr,
		checker:    field.NewChecker(append([]field.Option{field.WithLocation(loc)}, opts...)...),
	}, nil
}
