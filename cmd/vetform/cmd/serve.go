package cmd

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/vetform/pkg/httpserver"
	"github.com/dmitrymomot/vetform/pkg/i18n"
	"github.com/dmitrymomot/vetform/pkg/livecheck"
	"github.com/dmitrymomot/vetform/pkg/logger"
	"github.com/dmitrymomot/vetform/pkg/ratelimiter"
)

var errTranslationsMissing = errors.New("default language has no translations")

var (
	serveAddr      string
	serveScriptURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor de formularios",
	Long: `Inicia el servidor HTTP con los formularios de propietario, mascota,
cita y producto. Los campos se validan en vivo mediante datastar y los
envíos con errores se bloquean con una alerta temporal.

La configuración se lee de variables VETFORM_* y de archivos .env.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "dirección de escucha (reemplaza VETFORM_ADDR)")
	serveCmd.Flags().StringVar(&serveScriptURL, "script-url", "", "URL del bundle de datastar")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := setup(ctx)
	if err != nil {
		return err
	}
	logger.SetAsDefault(d.log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()
	bucket, err := ratelimiter.NewBucket(store, d.app.RateLimit)
	if err != nil {
		return err
	}

	srv := livecheck.New(
		livecheck.WithChecker(d.checker),
		livecheck.WithTranslator(d.translator),
		livecheck.WithMetrics(livecheck.NewMetrics(reg)),
		livecheck.WithLogger(d.log),
		livecheck.WithEnvironment(d.app.Environment()),
		livecheck.WithAlertTTL(d.app.AlertTTL),
		livecheck.WithScriptURL(serveScriptURL),
		livecheck.WithRateLimit(bucket),
	)

	r := srv.Routes()
	r.Get("/healthz", httpserver.HealthCheckHandler(d.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(d.log, translationsReady(d.translator)))

	cfg := d.app.HTTP
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if cfg.WriteTimeout > 0 && cfg.WriteTimeout <= d.app.AlertTTL {
		d.log.WarnContext(ctx, "write timeout is shorter than the alert TTL; blocked submissions may be cut",
			logger.Duration(cfg.WriteTimeout),
		)
	}

	return httpserver.NewFromConfig(cfg, httpserver.WithLogger(d.log)).Run(ctx, r)
}

func translationsReady(tr *i18n.Translator) httpserver.Check {
	return func(context.Context) error {
		if !slices.Contains(tr.SupportedLanguages(), tr.DefaultLanguage()) {
			return fmt.Errorf("%w: %s", errTranslationsMissing, tr.DefaultLanguage())
		}
		return nil
	}
}
