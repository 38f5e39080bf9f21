package user

import "context"

type Repository interface {
	// Create inserts a new user (DB uniqueness guards username/email)
	Create(ctx context.Context, u *User) error

	GetByID(ctx context.Context, id uint64) (*User, error)

	GetByUsername(ctx context.Context, username string) (*User, error)
}
