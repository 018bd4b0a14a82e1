// Package handler provides HTTP request handlers for the QuickDeal API.
//
// The handler package contains all HTTP endpoint implementations organized by domain.
// Each handler struct encapsulates the dependencies needed to serve requests for a
// specific feature area (rooms, health).
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//   - WriteNoContent: 204 response with no body
//
// # Example Usage
//
//	handler := NewRoomHandler(roomService)
//	mux.HandleFunc("POST /v1/rooms", handler.Create)
//	mux.HandleFunc("GET /v1/rooms/{roomId}", handler.Get)
package handler
