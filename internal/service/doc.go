// Package service implements the business logic layer for the QuickDeal API.
//
// The service package contains all domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined as package-level variables:
//
//	var (
//	    ErrRoomNotFound = errors.New("room not found")
//	    ErrRoomFull     = errors.New("room is full")
//	)
//
// # Concurrency
//
// RoomService serializes read-modify-write operations per room through
// an internal lock registry, so two concurrent joins racing for the
// last seat resolve deterministically: one wins, one gets ErrRoomFull.
//
// # Example Usage
//
//	service := NewRoomService(RoomServiceConfig{
//	    RoomRepo: roomRepository,
//	})
//	room, err := service.Create(ctx, 6)
package service
