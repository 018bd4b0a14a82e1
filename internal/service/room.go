package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/quickdeal/api/internal/model"
)

// RoomRepository defines the interface for room and player storage
type RoomRepository interface {
	CreateRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, code string) (*model.Room, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	AddPlayer(ctx context.Context, player *model.Player) error
	ListPlayers(ctx context.Context, code string) ([]*model.Player, error)
	CountPlayers(ctx context.Context, code string) (int, error)
	GetPlayerByNumber(ctx context.Context, code string, number int) (*model.Player, error)
	AssignLetters(ctx context.Context, code string, letters map[int]string) error
	ResetRoom(ctx context.Context, code string) error
}

// RoomService handles room lifecycle business logic
type RoomService struct {
	repo         RoomRepository
	generateCode CodeFunc

	// Per-room locks serialize read-modify-write operations (join,
	// deal, reset) on the same room. Distinct rooms never contend.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// RoomServiceConfig holds configuration for the room service
type RoomServiceConfig struct {
	RoomRepo RoomRepository

	// GenerateCode overrides the room code source. Defaults to
	// RandomRoomCode when nil.
	GenerateCode CodeFunc
}

// NewRoomService creates a new room service
func NewRoomService(cfg RoomServiceConfig) *RoomService {
	gen := cfg.GenerateCode
	if gen == nil {
		gen = RandomRoomCode
	}
	return &RoomService{
		repo:         cfg.RoomRepo,
		generateCode: gen,
		locks:        make(map[string]*sync.Mutex),
	}
}

// roomLock returns the mutex for a room code, creating it on first use.
// Locks are never evicted; room codes are short-lived and bounded in
// practice, and eviction would race with holders.
func (s *RoomService) roomLock(code string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[code] = lock
	}
	return lock
}

// Create creates a new room with a unique code and zero players
func (s *RoomService) Create(ctx context.Context, maxPlayers int) (*model.Room, error) {
	if maxPlayers < model.MinRoomPlayers || maxPlayers > model.MaxRoomPlayers {
		return nil, ErrInvalidMaxPlayers
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		exists, err := s.repo.CodeExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to check code: %w", err)
		}
		if exists {
			continue
		}

		room := &model.Room{
			Code:       code,
			MaxPlayers: maxPlayers,
			Status:     model.RoomStatusWaiting,
		}
		if err := s.repo.CreateRoom(ctx, room); err != nil {
			return nil, fmt.Errorf("failed to create room: %w", err)
		}
		return room, nil
	}

	return nil, ErrCodeExhausted
}

// GetInfo retrieves a room and its players, ordered by player number
func (s *RoomService) GetInfo(ctx context.Context, code string) (*model.RoomInfo, error) {
	room, err := s.repo.GetRoom(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	players, err := s.repo.ListPlayers(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	views := make([]model.PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, model.NewPlayerView(p))
	}

	return &model.RoomInfo{
		RoomCode:       room.Code,
		MaxPlayers:     room.MaxPlayers,
		Status:         room.Status,
		CurrentPlayers: len(players),
		Players:        views,
	}, nil
}

// Join adds a player to a waiting room, assigning the next player number
func (s *RoomService) Join(ctx context.Context, code, nickname string) (*model.JoinResult, error) {
	lock := s.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.repo.GetRoom(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status == model.RoomStatusStarted {
		return nil, ErrRoomStarted
	}

	count, err := s.repo.CountPlayers(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to count players: %w", err)
	}
	if count >= room.MaxPlayers {
		return nil, ErrRoomFull
	}

	player := &model.Player{
		RoomCode:     code,
		PlayerNumber: count + 1,
		Nickname:     strings.TrimSpace(nickname),
	}
	if err := s.repo.AddPlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	return &model.JoinResult{
		PlayerNumber:   player.PlayerNumber,
		CurrentPlayers: count + 1,
		MaxPlayers:     room.MaxPlayers,
	}, nil
}

// Deal assigns each player a unique letter and marks the room started.
// For N players the letters are 'A' through the Nth letter, shuffled
// uniformly, assigned in ascending player number order. Letters and the
// status change are committed atomically: on any failure no player has
// a letter and the room stays in waiting.
func (s *RoomService) Deal(ctx context.Context, code string) (*model.DealResult, error) {
	lock := s.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	room, err := s.repo.GetRoom(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	players, err := s.repo.ListPlayers(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	if len(players) < model.MinRoomPlayers {
		return nil, ErrNotEnoughPlayers
	}
	if len(players) > room.MaxPlayers {
		return nil, ErrTooManyPlayers
	}
	if room.Status == model.RoomStatusStarted || anyLetterAssigned(players) {
		return nil, ErrAlreadyDealt
	}

	letters := shuffledLetters(len(players))

	assignments := make(map[int]string, len(players))
	for i, p := range players {
		assignments[p.PlayerNumber] = letters[i]
	}

	if err := s.repo.AssignLetters(ctx, code, assignments); err != nil {
		return nil, fmt.Errorf("failed to assign letters: %w", err)
	}

	views := make([]model.PlayerView, 0, len(players))
	for i, p := range players {
		letter := letters[i]
		p.Letter = &letter
		views = append(views, model.NewPlayerView(p))
	}

	return &model.DealResult{
		RoomCode: code,
		Players:  views,
	}, nil
}

// Reset deletes all players and returns the room to waiting. Resetting
// a room that does not exist, or is already in waiting with no players,
// succeeds without effect.
func (s *RoomService) Reset(ctx context.Context, code string) error {
	lock := s.roomLock(code)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.ResetRoom(ctx, code); err != nil {
		return fmt.Errorf("failed to reset room: %w", err)
	}
	return nil
}

// GetPlayer retrieves a single player's view by room code and player number
func (s *RoomService) GetPlayer(ctx context.Context, code string, number int) (*model.PlayerView, error) {
	room, err := s.repo.GetRoom(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	player, err := s.repo.GetPlayerByNumber(ctx, code, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	view := model.NewPlayerView(player)
	return &view, nil
}

// shuffledLetters returns the first n alphabet letters in uniformly
// random order (Fisher-Yates via rand.Shuffle).
func shuffledLetters(n int) []string {
	letters := make([]string, n)
	for i := 0; i < n; i++ {
		letters[i] = string(rune('A' + i))
	}
	rand.Shuffle(n, func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})
	return letters
}

// anyLetterAssigned reports whether any player already holds a letter
func anyLetterAssigned(players []*model.Player) bool {
	for _, p := range players {
		if p.Letter != nil {
			return true
		}
	}
	return false
}
