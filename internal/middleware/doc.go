// Package middleware provides HTTP middleware for the QuickDeal API.
//
// Middleware wraps the router via Chain, which applies middlewares so the
// first argument is outermost:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//		middleware.Compress,
//	)
//
// # Available Middleware
//
//   - RequestID: assigns an X-Request-ID to each request, preserving one
//     supplied by the caller
//   - Logger: structured request logging via slog (method, path, status,
//     duration, request ID)
//   - Recovery: converts panics into 500 responses with a JSON body
//   - CORS: origin allowlist with preflight handling
//   - Compress: gzip response compression when the client accepts it
//
// # Context Values
//
// RequestID stores the identifier in the request context; retrieve it with
// GetRequestID(ctx).
package middleware
