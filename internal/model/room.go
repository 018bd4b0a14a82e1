package model

import (
	"fmt"
	"time"
)

// Room represents a dealing session identified by a short shareable code.
type Room struct {
	Code       string     `json:"code"`
	MaxPlayers int        `json:"max_players"`
	Status     RoomStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Player represents a participant inside a room. Letter is nil until the
// room has dealt, and immutable afterwards until the room is reset.
type Player struct {
	ID           string    `json:"id"`
	RoomCode     string    `json:"room_code"`
	PlayerNumber int       `json:"player_number"`
	Nickname     string    `json:"nickname,omitempty"`
	Letter       *string   `json:"letter,omitempty"`
	JoinedAt     time.Time `json:"joined_at"`
}

// DisplayName returns the effective nickname, substituting the
// "Player{N}" placeholder when no nickname was provided. This is a
// read-time computed property; the placeholder is never stored.
func (p *Player) DisplayName() string {
	if p.Nickname == "" {
		return fmt.Sprintf("Player%d", p.PlayerNumber)
	}
	return p.Nickname
}

// RoomStatus represents a room's lifecycle state
type RoomStatus string

const (
	RoomStatusWaiting RoomStatus = "waiting" // accepting joins, not yet dealt
	RoomStatusStarted RoomStatus = "started" // letters dealt, joins closed
)

// IsValid returns true if the status is a known room status
func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomStatusWaiting, RoomStatusStarted:
		return true
	default:
		return false
	}
}

// Business constraints
const (
	MinRoomPlayers = 5
	MaxRoomPlayers = 10

	RoomCodeLength = 6
)

// PlayerView is the player representation returned to clients, with the
// nickname placeholder already substituted.
type PlayerView struct {
	PlayerNumber int     `json:"player_number"`
	Nickname     string  `json:"nickname"`
	Letter       *string `json:"letter"`
}

// NewPlayerView builds the client view of a player
func NewPlayerView(p *Player) PlayerView {
	return PlayerView{
		PlayerNumber: p.PlayerNumber,
		Nickname:     p.DisplayName(),
		Letter:       p.Letter,
	}
}

// CreateRoomRequest represents a request to create a room
type CreateRoomRequest struct {
	MaxPlayers int `json:"max_players"`
}

// CreateRoomResponse is returned after a room is created
type CreateRoomResponse struct {
	RoomCode   string `json:"room_id"`
	MaxPlayers int    `json:"max_players"`
}

// JoinRoomRequest represents a request to join a room
type JoinRoomRequest struct {
	Nickname string `json:"nickname"`
}

// JoinResult is returned after a successful join
type JoinResult struct {
	PlayerNumber   int `json:"player_number"`
	CurrentPlayers int `json:"current_players"`
	MaxPlayers     int `json:"max_players"`
}

// RoomInfo is the full client view of a room and its players,
// ordered by player number.
type RoomInfo struct {
	RoomCode       string       `json:"room_id"`
	MaxPlayers     int          `json:"max_players"`
	Status         RoomStatus   `json:"status"`
	CurrentPlayers int          `json:"current_players"`
	Players        []PlayerView `json:"players"`
}

// DealResult is returned after letters have been dealt
type DealResult struct {
	RoomCode string       `json:"room_id"`
	Players  []PlayerView `json:"players"`
}
