// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client-supplied "X-Request-ID" header when it is
// 1-128 characters of [a-zA-Z0-9_-], otherwise it generates a UUIDv4. The id
// is echoed in the response header and stored in the request context, where
// FromContext reads it and Extractor adds it to slog records:
//
//	log := logger.New(logger.WithContextExtractors(requestid.Extractor))
//	r.Use(requestid.Middleware)
package requestid
