// Package repository implements the data access layer for the QuickDeal API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (CreateRoom, GetRoom, AddPlayer, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Database Connection
//
// Repositories accept a database.Database interface, allowing:
//
//   - Connection pooling and management at a higher level
//   - Transaction support when needed
//   - Easy testing with mock implementations
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - AtomicBatch for multi-statement writes (deal, reset)
//   - time::now() for automatic timestamps
//
// # Example Usage
//
//	repo := NewRoomRepository(db)
//	room, err := repo.GetRoom(ctx, "AB12CD")
//	if err != nil {
//	    return err
//	}
//	if room == nil {
//	    // Handle not found
//	}
package repository
