package users

import (
	"context"

	"codeberg.org/mutker/goresult/result"
)

// Service defines the user operations exposed to the CLI
type Service interface {
	Register(ctx context.Context, firstname, lastname string, age int) result.Result[User]
	Get(ctx context.Context, id int64) result.Result[User]
	List(ctx context.Context) result.Result[[]User]
	Seed(ctx context.Context) result.Result[int]
	Close() error
}

// Repository defines the interface for user data storage
type Repository interface {
	Insert(ctx context.Context, u User) (User, error)
	Get(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
	Close() error
}

// User represents the domain entity
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Age       int
}
