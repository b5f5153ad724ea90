package livecheck

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/vetform/handler"
	"github.com/dmitrymomot/vetform/pkg/environment"
	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/gate"
	"github.com/dmitrymomot/vetform/pkg/i18n"
	"github.com/dmitrymomot/vetform/pkg/logger"
	"github.com/dmitrymomot/vetform/pkg/ratelimiter"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

// DefaultScriptURL is the datastar bundle loaded by the demo page.
const DefaultScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"

// Server serves the clinic forms with live validation.
type Server struct {
	catalogue  *Catalogue
	checker    *field.Checker
	translator *i18n.Translator
	metrics    *Metrics
	logger     *slog.Logger
	env        environment.Environment
	alertTTL   time.Duration
	scheduler  gate.Scheduler
	scriptURL  string
	limiter    *ratelimiter.Bucket

	errorHandler handler.ErrorHandler[handler.Context]
}

// Option configures a Server.
type Option func(*Server)

// WithCatalogue replaces the default forms.
func WithCatalogue(c *Catalogue) Option {
	return func(s *Server) {
		if c != nil {
			s.catalogue = c
		}
	}
}

// WithChecker sets the classifier, validators and clock.
func WithChecker(c *field.Checker) Option {
	return func(s *Server) {
		if c != nil {
			s.checker = c
		}
	}
}

// WithTranslator localizes messages and page labels.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

// WithMetrics enables the counters and the /metrics endpoint.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the request and gate logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEnvironment sets the environment stored in request contexts.
func WithEnvironment(env environment.Environment) Option {
	return func(s *Server) {
		if env != "" {
			s.env = env
		}
	}
}

// WithAlertTTL sets how long summary alerts stay on the page.
func WithAlertTTL(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.alertTTL = d
		}
	}
}

// WithScheduler replaces time.AfterFunc for alert removal.
func WithScheduler(sch gate.Scheduler) Option {
	return func(s *Server) {
		if sch != nil {
			s.scheduler = sch
		}
	}
}

// WithScriptURL sets the datastar bundle URL of the demo page.
func WithScriptURL(u string) Option {
	return func(s *Server) {
		if u != "" {
			s.scriptURL = u
		}
	}
}

// WithRateLimit throttles /check and form submissions per client IP.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(s *Server) {
		s.limiter = b
	}
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		catalogue: DefaultCatalogue(),
		checker:   field.NewChecker(),
		logger:    logger.Discard(),
		env:       environment.Development,
		alertTTL:  gate.DefaultAlertTTL,
		scheduler: gate.AfterFunc,
		scriptURL: DefaultScriptURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
		ErrorPage:  errorPage,
		ErrorToast: errorToast,
		Translate: func(ctx context.Context, key string) string {
			return s.text(ctx, key, "")
		},
	})
	return s
}

// Routes returns the HTTP routes of the server.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(environment.Middleware(s.env))
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	if s.translator != nil {
		r.Use(i18n.Middleware(s.translator))
	}

	r.Get("/", handler.Wrap(s.page,
		handler.WithBinders[handler.Context, PageRequest](bindPage),
		handler.WithErrorHandler[handler.Context, PageRequest](s.errorHandler),
	))
	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(ratelimiter.Middleware(s.limiter, ratelimiter.ClientIP,
				ratelimiter.WithDenyHandler(http.HandlerFunc(s.tooManyRequests)),
			))
		}
		r.Post("/check", handler.Wrap(s.check,
			handler.WithBinders[handler.Context, CheckRequest](bindCheckForm, bindCheckSignals),
			handler.WithErrorHandler[handler.Context, CheckRequest](s.errorHandler),
		))
		r.Post("/forms/{form}", handler.Wrap(s.submit,
			handler.WithBinders[handler.Context, SubmitRequest](bindSubmitForm, bindSubmitSignals),
			handler.WithErrorHandler[handler.Context, SubmitRequest](s.errorHandler),
		))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	return r
}

func (s *Server) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
}

// text translates key in the request language, falling back to def.
func (s *Server) text(ctx context.Context, key, def string) string {
	if s.translator == nil {
		return def
	}
	return s.translator.Td(i18n.GetLocale(ctx), key, def)
}

// localize renders outcome messages in the request language.
func (s *Server) localize(ctx context.Context) feedback.Localize {
	return feedback.Localized(s.translator, i18n.GetLocale(ctx))
}

// observe counts every outcome painted through r.
func (s *Server) observe(r feedback.Renderer) feedback.Renderer {
	if s.metrics == nil {
		return r
	}
	return observedRenderer{Renderer: r, checker: s.checker, metrics: s.metrics}
}

type observedRenderer struct {
	feedback.Renderer
	checker *field.Checker
	metrics *Metrics
}

func (o observedRenderer) Render(h field.Handle, out validator.Outcome) {
	o.metrics.ObserveCheck(o.checker.Classify(h), out.Severity)
	o.Renderer.Render(h, out)
}

// newGate builds the per-request gate of a submission.
func (s *Server) newGate(ctx context.Context, r feedback.Renderer, alerts gate.Alerts) *gate.Gate {
	return gate.New(form.NewValidator(s.checker, s.observe(r)), alerts,
		gate.WithAlertTTL(s.alertTTL),
		gate.WithScheduler(s.scheduler),
		gate.WithMessage(s.text(ctx, gate.MessageKey, gate.DefaultMessage)),
		gate.WithLogger(s.logger),
		gate.WithHook(s.recordDecision),
	)
}

func (s *Server) recordDecision(ctx context.Context, f form.Form, res form.Result, d gate.Decision) {
	s.metrics.ObserveSubmission(d)
	attrs := []any{
		logger.Component("livecheck"),
		logger.Decision(d),
		slog.Int("recognized", res.Recognized),
		logger.RequestID(middleware.GetReqID(ctx)),
	}
	if st, ok := f.(*form.Static); ok {
		attrs = append(attrs, logger.Form(st.ID))
	}
	s.logger.DebugContext(ctx, "submission decided", attrs...)
}

// requestLogger logs every request once it completes.
func requestLogger(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				logger.Duration(time.Since(start)),
				logger.RequestID(middleware.GetReqID(r.Context())),
			)
		})
	}
}
