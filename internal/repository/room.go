package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quickdeal/api/internal/database"
	"github.com/quickdeal/api/internal/model"
)

// RoomRepository handles room and player data access
type RoomRepository struct {
	db database.Database
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db database.Database) *RoomRepository {
	return &RoomRepository{db: db}
}

// CreateRoom creates a new room with zero players
func (r *RoomRepository) CreateRoom(ctx context.Context, room *model.Room) error {
	query := `
		CREATE room CONTENT {
			code: $code,
			max_players: $max_players,
			status: $status,
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"code":        room.Code,
		"max_players": room.MaxPlayers,
		"status":      string(room.Status),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: room code already exists", database.ErrDuplicate)
		}
		return err
	}

	if records, ok := extractQueryResults(result); ok && len(records) > 0 {
		if record, ok := records[0].(map[string]interface{}); ok {
			room.CreatedAt = getTime(record, "created_at")
		}
	}
	return nil
}

// GetRoom retrieves a room by its code. Returns nil if the room does not exist.
func (r *RoomRepository) GetRoom(ctx context.Context, code string) (*model.Room, error) {
	query := `SELECT * FROM room WHERE code = $code LIMIT 1`
	vars := map[string]interface{}{"code": code}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected room record shape", database.ErrQuery)
	}
	return parseRoomRecord(record), nil
}

// CodeExists reports whether a room with the given code already exists
func (r *RoomRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT count() AS count FROM room WHERE code = $code GROUP ALL`
	vars := map[string]interface{}{"code": code}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return extractCount(result) > 0, nil
}

// AddPlayer inserts a player into a room. The player id is assigned here.
func (r *RoomRepository) AddPlayer(ctx context.Context, player *model.Player) error {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}

	query := `
		CREATE player CONTENT {
			player_id: $player_id,
			room_code: $room_code,
			player_number: $player_number,
			nickname: IF $nickname IS NOT NULL THEN $nickname ELSE NONE END,
			letter: NONE,
			joined_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"player_id":     player.ID,
		"room_code":     player.RoomCode,
		"player_number": player.PlayerNumber,
		"nickname":      nilIfEmpty(player.Nickname),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: player number already taken", database.ErrDuplicate)
		}
		return err
	}

	if records, ok := extractQueryResults(result); ok && len(records) > 0 {
		if record, ok := records[0].(map[string]interface{}); ok {
			player.JoinedAt = getTime(record, "joined_at")
		}
	}
	return nil
}

// ListPlayers returns all players in a room ordered by player number
func (r *RoomRepository) ListPlayers(ctx context.Context, code string) ([]*model.Player, error) {
	query := `SELECT * FROM player WHERE room_code = $code ORDER BY player_number ASC`
	vars := map[string]interface{}{"code": code}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(results)
	if !ok {
		return []*model.Player{}, nil
	}

	players := make([]*model.Player, 0, len(records))
	for _, rec := range records {
		record, ok := rec.(map[string]interface{})
		if !ok {
			continue
		}
		players = append(players, parsePlayerRecord(record))
	}
	return players, nil
}

// CountPlayers returns the number of players in a room
func (r *RoomRepository) CountPlayers(ctx context.Context, code string) (int, error) {
	query := `SELECT count() AS count FROM player WHERE room_code = $code GROUP ALL`
	vars := map[string]interface{}{"code": code}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// GetPlayerByNumber retrieves a single player by room code and player number.
// Returns nil if no such player exists.
func (r *RoomRepository) GetPlayerByNumber(ctx context.Context, code string, number int) (*model.Player, error) {
	query := `SELECT * FROM player WHERE room_code = $code AND player_number = $number LIMIT 1`
	vars := map[string]interface{}{
		"code":   code,
		"number": number,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected player record shape", database.ErrQuery)
	}
	return parsePlayerRecord(record), nil
}

// AssignLetters writes every player's letter and marks the room started,
// all in one atomic batch. Letters are keyed by player number.
func (r *RoomRepository) AssignLetters(ctx context.Context, code string, letters map[int]string) error {
	batch := database.NewAtomicBatch()

	for number, letter := range letters {
		batch.Add(
			`UPDATE player SET letter = $letter WHERE room_code = $code AND player_number = $number`,
			map[string]interface{}{
				"letter": letter,
				"code":   code,
				"number": number,
			},
		)
	}

	batch.Add(
		`UPDATE room SET status = $status WHERE code = $code`,
		map[string]interface{}{
			"status": string(model.RoomStatusStarted),
			"code":   code,
		},
	)

	return batch.Execute(ctx, r.db)
}

// ResetRoom deletes all players and returns the room to waiting,
// in one atomic batch. A no-op when the room does not exist.
func (r *RoomRepository) ResetRoom(ctx context.Context, code string) error {
	batch := database.NewAtomicBatch()

	batch.Add(
		`DELETE player WHERE room_code = $code`,
		map[string]interface{}{"code": code},
	)
	batch.Add(
		`UPDATE room SET status = $status WHERE code = $code`,
		map[string]interface{}{
			"status": string(model.RoomStatusWaiting),
			"code":   code,
		},
	)

	return batch.Execute(ctx, r.db)
}

// parseRoomRecord converts a SurrealDB record map into a Room
func parseRoomRecord(record map[string]interface{}) *model.Room {
	return &model.Room{
		Code:       getString(record, "code"),
		MaxPlayers: getInt(record, "max_players"),
		Status:     model.RoomStatus(getString(record, "status")),
		CreatedAt:  getTime(record, "created_at"),
	}
}

// parsePlayerRecord converts a SurrealDB record map into a Player
func parsePlayerRecord(record map[string]interface{}) *model.Player {
	return &model.Player{
		ID:           getString(record, "player_id"),
		RoomCode:     getString(record, "room_code"),
		PlayerNumber: getInt(record, "player_number"),
		Nickname:     getString(record, "nickname"),
		Letter:       getStringPtr(record, "letter"),
		JoinedAt:     getTime(record, "joined_at"),
	}
}

// nilIfEmpty converts an empty string to nil for optional fields
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
