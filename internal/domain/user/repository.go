package user

import "context"

// Repository persists investors. Getters return nil, nil when absent.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
}

type ListFilter struct {
	Page     int
	PageSize int
}
