package batch

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lexcheck/pkg/pattern"
)

// Error codes reported in Result.Error.
const (
	CodeUnknownValidator = "unknown_validator"
	CodeInvalidArgument  = "invalid_argument"
)

const defaultConcurrency = 8

// Case is a single classification request. Text is left untyped so that
// non-string scalars from decoded documents surface as invalid_argument.
type Case struct {
	Validator string `yaml:"validator" json:"validator"`
	Text      any    `yaml:"text" json:"text"`
}

// Result is the outcome of one Case.
type Result struct {
	Validator string `json:"validator"`
	Text      any    `json:"text"`
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
}

// Option configures Run.
type Option func(*options)

type options struct {
	concurrency int
	onResult    func(Result)
}

// WithConcurrency bounds how many cases are classified at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithResultHook registers a callback invoked for every finished case.
// The hook may be called from several goroutines at once.
func WithResultHook(fn func(Result)) Option {
	return func(o *options) {
		if fn != nil {
			o.onResult = fn
		}
	}
}

// Evaluate classifies a single case.
func Evaluate(c Case) Result {
	res := Result{Validator: c.Validator, Text: c.Text}

	valid, err := pattern.MatchValue(pattern.Name(c.Validator), c.Text)
	switch {
	case errors.Is(err, pattern.ErrUnknownValidator):
		res.Error = CodeUnknownValidator
	case errors.Is(err, pattern.ErrInvalidArgument):
		res.Error = CodeInvalidArgument
	default:
		res.Valid = valid
	}
	return res
}

// Run classifies cases concurrently and returns results in input order.
// Per-case problems are reported in Result.Error; the only error Run returns
// is the context's.
func Run(ctx context.Context, cases []Case, opts ...Option) ([]Result, error) {
	o := &options{concurrency: defaultConcurrency}
	for _, opt := range opts {
		opt(o)
	}

	results := make([]Result, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(c)
			if o.onResult != nil {
				o.onResult(results[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done once Wait returns; only the caller's context counts.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summary counts valid, invalid and failed results.
func Summary(results []Result) (valid, invalid, failed int) {
	for _, r := range results {
		switch {
		case r.Error != "":
			failed++
		case r.Valid:
			valid++
		default:
			invalid++
		}
	}
	return valid, invalid, failed
}
