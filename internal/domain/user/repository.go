package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByEmailOrUsername finds a user matching either value; used for
	// duplicate checks on registration.
	GetByEmailOrUsername(ctx context.Context, email, username string) (*User, error)
	// GetTakenBy finds another user (excluding excludeID) that already
	// holds the given email or username.
	GetTakenBy(ctx context.Context, excludeID, email, username string) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
}
