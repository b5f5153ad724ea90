// Package httpserver runs the vetform HTTP handler with graceful shutdown,
// configurable timeouts and health probes.
//
// Run binds the listener, calls the start hooks with the bound address and
// serves until the context is cancelled, an interrupt or TERM signal is
// received, or Shutdown is called. Datastar submissions keep their stream
// open until the summary alert expires, so the write timeout must be longer
// than the alert TTL.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	r := livecheck.New(opts...).Routes()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run joins listen and serve failures with ErrStart; Shutdown joins
// http.Server.Shutdown failures with ErrShutdown.
package httpserver
