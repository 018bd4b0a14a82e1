package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/quickdeal/api/internal/model"
	"github.com/quickdeal/api/internal/service"
)

// RoomHandler handles room HTTP requests
type RoomHandler struct {
	svc *service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}

// Create handles POST /v1/rooms - create a new room
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateRoomRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	room, err := h.svc.Create(ctx, req.MaxPlayers)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, model.CreateRoomResponse{
		RoomCode:   room.Code,
		MaxPlayers: room.MaxPlayers,
	}, map[string]string{
		"self": "/v1/rooms/" + room.Code,
	})
}

// Get handles GET /v1/rooms/{roomId} - get room details and players
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := roomCode(r)
	if code == "" {
		WriteError(w, model.NewBadRequestError("room ID required"))
		return
	}

	info, err := h.svc.GetInfo(ctx, code)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, info, nil)
}

// Join handles POST /v1/rooms/{roomId}/join - join a room
func (h *RoomHandler) Join(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := roomCode(r)
	if code == "" {
		WriteError(w, model.NewBadRequestError("room ID required"))
		return
	}

	var req model.JoinRoomRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.svc.Join(ctx, code, req.Nickname)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}

// Deal handles POST /v1/rooms/{roomId}/deal - deal letters to players
func (h *RoomHandler) Deal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := roomCode(r)
	if code == "" {
		WriteError(w, model.NewBadRequestError("room ID required"))
		return
	}

	result, err := h.svc.Deal(ctx, code)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, nil)
}

// Reset handles POST /v1/rooms/{roomId}/reset - clear players and restart
func (h *RoomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := roomCode(r)
	if code == "" {
		WriteError(w, model.NewBadRequestError("room ID required"))
		return
	}

	if err := h.svc.Reset(ctx, code); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// GetPlayer handles GET /v1/rooms/{roomId}/players/{playerNumber}
func (h *RoomHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := roomCode(r)
	if code == "" {
		WriteError(w, model.NewBadRequestError("room ID required"))
		return
	}

	number, err := strconv.Atoi(r.PathValue("playerNumber"))
	if err != nil || number < 1 {
		WriteError(w, model.NewBadRequestError("invalid player number"))
		return
	}

	player, err := h.svc.GetPlayer(ctx, code, number)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, player, nil)
}

// roomCode extracts the room code path value, normalized to uppercase
// so codes are case-insensitive on the wire.
func roomCode(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.PathValue("roomId")))
}
