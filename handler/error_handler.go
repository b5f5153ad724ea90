package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/vetform/pkg/environment"
	"github.com/dmitrymomot/vetform/pkg/logger"
)

// DefaultErrorMessage is shown for errors without a translation key.
const DefaultErrorMessage = "Ocurrió un error al procesar la solicitud."

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

// ErrorToastParams contains data for rendering error toasts
type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders full error page for regular HTTP requests
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders toast notification for DataStar requests
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget specifies where to render toast notifications (default: "#toast-container")
	ToastTarget string

	// ToastMode specifies how to render toasts (default: PatchPrepend)
	ToastMode datastar.ElementPatchMode

	// Translate resolves HTTPError keys. Unresolved keys fall back to
	// DefaultErrorMessage.
	Translate func(ctx context.Context, key string) string
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func isServerError(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError
}

// determineErrorType maps HTTP status codes to error types for UI display
func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case isServerError(statusCode):
		return "error"
	default:
		return "info"
	}
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func setConfigDefaults(cfg ErrorHandlerConfig) ErrorHandlerConfig {
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	return cfg
}

// classifyError analyzes the error and returns structured error information.
// Outside development, messages of unknown errors are never exposed.
func classifyError(ctx context.Context, cfg ErrorHandlerConfig, err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    DefaultErrorMessage,
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		if cfg.Translate != nil {
			if msg := cfg.Translate(ctx, httpErr.Key); msg != "" && msg != httpErr.Key {
				info.Message = msg
			}
		}
	case environment.IsDevelopment(ctx):
		info.Message = err.Error()
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
		logger.RequestID(middleware.GetReqID(ctx.Request().Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		slog.Bool("is_datastar", IsDataStar(ctx.Request())),
		logger.Component("error_handler"),
	)
}

// renderDataStarResponse renders error as DataStar toast notification
func renderDataStarResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorToast == nil {
		log.Warn("no error toast component configured for DataStar request",
			logger.RequestID(requestID),
			logger.Component("error_handler"),
		)
		return
	}

	component := cfg.ErrorToast(ErrorToastParams{
		Message:   info.Message,
		Type:      info.Type,
		RequestID: requestID,
	})
	response := Templ(
		component,
		WithTarget(cfg.ToastTarget),
		WithPatchMode(cfg.ToastMode),
	)

	// SSE responses keep status 200 so the client applies the patch
	if renderErr := response.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error toast",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_toast"),
		)
	}
}

// renderHTTPResponse renders error as full HTTP error page
func renderHTTPResponse(ctx Context, cfg ErrorHandlerConfig, info ErrorInfo, requestID string, log *slog.Logger) {
	if cfg.ErrorPage == nil {
		http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
		return
	}

	component := cfg.ErrorPage(ErrorPageParams{
		Error:      info.Message,
		StatusCode: info.StatusCode,
		RequestID:  requestID,
		RetryURL:   ctx.Request().URL.Path,
	})

	if renderErr := TemplWithStatus(info.StatusCode, component).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
		log.Error("failed to render error page",
			logger.RequestID(requestID),
			logger.Error(renderErr),
			logger.Event("render_error_page"),
		)
	}
}

// NewErrorHandler creates the default error handler that adapts to request type.
// For regular HTTP requests, it renders a full error page.
// For DataStar requests, it sends a toast notification.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	cfg = setConfigDefaults(cfg)

	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		requestID := middleware.GetReqID(ctx.Request().Context())
		info := classifyError(ctx, cfg, err)
		logError(log, ctx, err, info)

		if IsDataStar(ctx.Request()) {
			renderDataStarResponse(ctx, cfg, info, requestID, log)
		} else {
			renderHTTPResponse(ctx, cfg, info, requestID, log)
		}
	}
}
