package favorite

import "context"

type Repository interface {
	// Add is idempotent: adding an existing favorite keeps its original CreatedAt.
	Add(ctx context.Context, kind Kind, key string) error
	Remove(ctx context.Context, kind Kind, key string) error
	Exists(ctx context.Context, kind Kind, key string) (bool, error)
	// List returns favorites of one kind, newest first.
	List(ctx context.Context, kind Kind) ([]Favorite, error)
}
