// Package ratelimit provides a token bucket limiter for HTTP handlers.
//
// A Bucket admits up to Capacity requests per key in a burst and refills
// RefillRate tokens every RefillInterval. State lives in a Store; MemoryStore
// keeps it in process and evicts keys that have been idle for an hour.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimit.NewBucket(store, ratelimit.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimit.Middleware(bucket, ratelimit.ClientIP, nil))
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response, plus Retry-After when the request
// is denied.
package ratelimit
