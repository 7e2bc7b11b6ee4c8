package preferences

import "context"

type Repository interface {
	// SetMany upserts every value, all or none.
	SetMany(ctx context.Context, values map[string]string) error
	List(ctx context.Context) (map[string]string, error)
	// Clear removes every stored preference.
	Clear(ctx context.Context) error
}
