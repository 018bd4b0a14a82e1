// Package model defines domain entities and data structures for the QuickDeal API.
//
// The model package contains all struct definitions for domain objects, request/response
// types, and error definitions. Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Room: A dealing session identified by a 6-character shareable code
//   - Player: A participant in a room, numbered in join order
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Room struct {
//	    Code       string `json:"code"`
//	    MaxPlayers int    `json:"max_players"`
//	    Status     RoomStatus `json:"status"`
//	}
//
// # Validation Constants
//
// The package defines validation constants:
//
//	const (
//	    MinRoomPlayers = 5
//	    MaxRoomPlayers = 10
//	    RoomCodeLength = 6
//	)
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
