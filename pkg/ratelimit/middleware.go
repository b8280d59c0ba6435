package ratelimit

import (
	"net/http"
	"strconv"
	"time"
)

// DeniedFunc writes the response for a request over the limit.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, res Result)

// Middleware limits requests per key. Rate limit headers are set before
// next or denied runs. A nil denied writes a plain 429.
func Middleware(b *Bucket, key KeyFunc, denied DeniedFunc) func(http.Handler) http.Handler {
	if denied == nil {
		denied = func(w http.ResponseWriter, _ *http.Request, _ Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), key(r))
			if err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				// Rounded up so clients never retry early.
				wait := res.RetryAfter(time.Now())
				h.Set("Retry-After", strconv.Itoa(int((wait+time.Second-1)/time.Second)))
				denied(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
