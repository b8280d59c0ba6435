// Package checkapi exposes the validator registry over HTTP.
//
// Routes:
//
//	GET  /health                   liveness probe
//	GET  /metrics                  Prometheus metrics
//	GET  /validators               registered validator names
//	POST /validators/{name}/check  {"text": "..."} -> {"data": {"validator", "valid"}}
//	POST /check                    {"cases": [{"validator", "text"}, ...]}
//
// Responses use the {"data", "meta", "error"} envelope. A non-string text
// yields 400 invalid_argument; an unknown validator in the path yields 404
// unknown_validator. Within a batch, per-case problems are reported in the
// result's error field and the request still succeeds.
package checkapi
