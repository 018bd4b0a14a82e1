package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Room Errors =====
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidMaxPlayers = errors.New("max players must be between 5 and 10")
	ErrRoomStarted       = errors.New("room has already started")
	ErrRoomFull          = errors.New("room is full")
	ErrCodeExhausted     = errors.New("could not generate a unique room code")
)

// ===== Deal Errors =====
var (
	ErrNotEnoughPlayers = errors.New("not enough players to deal")
	ErrTooManyPlayers   = errors.New("room has more players than its capacity")
	ErrAlreadyDealt     = errors.New("letters have already been dealt")
)

// ===== Player Errors =====
var (
	ErrPlayerNotFound = errors.New("player not found")
)
