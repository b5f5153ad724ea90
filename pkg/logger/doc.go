// Package logger builds the *slog.Logger used across vetform.
//
// New applies functional options over production defaults (JSON, info level,
// stdout) and wraps the handler with LogHandlerDecorator, which adds
// attributes pulled from the context on every record:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "vetform"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//
// Attribute helpers keep key names consistent. Besides the generic ones
// (Component, Event, Error, Duration) there are helpers for the validation
// domain: Field, Category, Severity, Decision, Form, AlertID and Trigger.
//
//	log.InfoContext(ctx, "submission blocked",
//		logger.Form("mascota"),
//		logger.Field(first.Name()),
//		logger.AlertID(id),
//	)
//
// Discard returns a logger that drops everything; components use it when no
// logger is configured.
package logger
