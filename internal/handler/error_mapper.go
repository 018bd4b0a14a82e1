package handler

import (
	"errors"

	"github.com/quickdeal/api/internal/model"
	"github.com/quickdeal/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrRoomNotFound):
		return model.NewNotFoundError("room")
	case errors.Is(err, service.ErrPlayerNotFound):
		return model.NewNotFoundError("player")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrRoomStarted),
		errors.Is(err, service.ErrAlreadyDealt):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidMaxPlayers):
		return model.NewValidationError([]model.FieldError{{Field: "max_players", Message: err.Error()}})
	case errors.Is(err, service.ErrNotEnoughPlayers):
		return model.NewValidationError([]model.FieldError{{Field: "players", Message: err.Error()}})

	// Capacity errors → 422
	case errors.Is(err, service.ErrRoomFull):
		return model.NewValidationError([]model.FieldError{{Field: "limit", Message: err.Error()}})

	// ===== Invariant Breaches → 500 =====
	// A room holding more players than its capacity means stored state
	// is inconsistent, not that the request was wrong.
	case errors.Is(err, service.ErrTooManyPlayers),
		errors.Is(err, service.ErrCodeExhausted):
		return model.NewInternalError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
