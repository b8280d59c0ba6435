package checkapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/lexcheck/pkg/batch"
	"github.com/dmitrymomot/lexcheck/pkg/logger"
	"github.com/dmitrymomot/lexcheck/pkg/pattern"
	"github.com/dmitrymomot/lexcheck/pkg/ratelimit"
	"github.com/dmitrymomot/lexcheck/pkg/validator"
)

const (
	defaultMaxBodyBytes = 1 << 20
	defaultMaxBatchSize = 1000
)

// Handler serves the validator registry over HTTP.
type Handler struct {
	log          *slog.Logger
	registry     *prometheus.Registry
	metrics      *Metrics
	maxBodyBytes int64
	maxBatchSize int
	concurrency  int
	limiter      *ratelimit.Bucket
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithRegistry registers metrics on reg and serves it at /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(h *Handler) {
		if reg != nil {
			h.registry = reg
		}
	}
}

// WithMaxBodyBytes caps request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// WithMaxBatchSize caps the number of cases accepted by POST /check.
func WithMaxBatchSize(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatchSize = n
		}
	}
}

// WithBatchConcurrency bounds parallel classification in POST /check.
func WithBatchConcurrency(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.concurrency = n
		}
	}
}

// WithRateLimiter limits the validator routes per client IP.
// /health and /metrics are never limited.
func WithRateLimiter(b *ratelimit.Bucket) Option {
	return func(h *Handler) { h.limiter = b }
}

// New builds a Handler. Without WithRegistry a private registry is used.
func New(opts ...Option) *Handler {
	h := &Handler{
		log:          logger.Discard(),
		maxBodyBytes: defaultMaxBodyBytes,
		maxBatchSize: defaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.registry == nil {
		h.registry = prometheus.NewRegistry()
	}
	h.metrics = NewMetrics(h.registry)
	return h
}

// Routes returns the API router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(requestLogger(h.log, h.metrics))
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimit.Middleware(h.limiter, ratelimit.ClientIP, h.rateLimited))
		}
		r.Use(limitBody(h.maxBodyBytes))
		r.Get("/validators", h.listValidators)
		r.Post("/validators/{name}/check", h.checkOne)
		r.Post("/check", h.checkBatch)
	})

	return r
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request, _ ratelimit.Result) {
	h.metrics.RateLimited.Inc()
	h.log.WarnContext(r.Context(), "rate limit exceeded", slog.String("client_ip", ratelimit.ClientIP(r)))
	writeError(w, http.StatusTooManyRequests, &ErrorDetail{
		Code:    CodeRateLimited,
		Message: "too many requests",
	})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *Handler) listValidators(w http.ResponseWriter, _ *http.Request) {
	names := pattern.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	writeData(w, out, map[string]any{"count": len(out)})
}

type checkRequest struct {
	Text any `json:"text"`
}

type checkResponse struct {
	Validator string `json:"validator"`
	Valid     bool   `json:"valid"`
}

func (h *Handler) checkOne(w http.ResponseWriter, r *http.Request) {
	name, err := pattern.ParseName(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, &ErrorDetail{Code: CodeUnknownValidator, Message: err.Error()})
		return
	}

	var req checkRequest
	if !h.decode(w, r, &req) {
		return
	}

	valid, err := pattern.MatchValue(name, req.Text)
	if err != nil {
		h.metrics.ObserveCheck(string(name), false, true)
		writeError(w, http.StatusBadRequest, &ErrorDetail{Code: CodeInvalidArgument, Message: err.Error()})
		return
	}
	h.metrics.ObserveCheck(string(name), valid, false)

	h.log.DebugContext(r.Context(), "checked input", logger.Validator(string(name)), logger.Valid(valid))
	writeData(w, checkResponse{Validator: string(name), Valid: valid}, nil)
}

type batchRequest struct {
	Cases []batch.Case `json:"cases"`
}

func (h *Handler) checkBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !h.decode(w, r, &req) {
		return
	}

	err := validator.Apply(
		validator.Rule{
			Check: func() bool { return len(req.Cases) > 0 },
			Error: validator.ValidationError{
				Field:          "cases",
				Message:        "must contain at least one case",
				TranslationKey: "validation.required",
			},
		},
		validator.Rule{
			Check: func() bool { return len(req.Cases) <= h.maxBatchSize },
			Error: validator.ValidationError{
				Field:          "cases",
				Message:        fmt.Sprintf("must contain at most %d cases", h.maxBatchSize),
				TranslationKey: "validation.max_items",
			},
		},
	)
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		writeError(w, http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    CodeValidationError,
			Message: verrs.Error(),
			Details: verrs.Details(),
		})
		return
	}

	results, err := batch.Run(r.Context(), req.Cases,
		batch.WithConcurrency(h.concurrency),
		batch.WithResultHook(func(res batch.Result) {
			h.metrics.ObserveCheck(res.Validator, res.Valid, res.Error != "")
		}),
	)
	if err != nil {
		// Only a cancelled request context gets here.
		h.log.WarnContext(r.Context(), "batch check aborted", logger.Error(err))
		writeError(w, http.StatusServiceUnavailable, &ErrorDetail{Code: CodeInternalError, Message: err.Error()})
		return
	}

	valid, invalid, failed := batch.Summary(results)
	writeData(w, results, map[string]any{
		"valid":   valid,
		"invalid": invalid,
		"failed":  failed,
	})
}

// decode reads a JSON body into v and writes the error response itself when
// that fails.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, &ErrorDetail{
			Code:    CodePayloadTooLarge,
			Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return false
	}

	writeError(w, http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: "invalid JSON body: " + err.Error()})
	return false
}
