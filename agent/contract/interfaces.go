package contract

import "context"

// Parser turns free text into a validated Command or a typed error
// (ErrModelInvoke, ErrSchemaViolation, ErrValidation).
type Parser interface {
	Parse(ctx context.Context, text string) (Command, error)
}

// Store is the per-agent row store.
type Store interface {
	Create(ctx context.Context, name string, secondary *string) (int64, error)
	List(ctx context.Context) ([]Row, error)
	Update(ctx context.Context, id int64, name, secondary *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Row is one stored record. Secondary is nil when the optional column is NULL.
type Row struct {
	ID        int64
	Name      string
	Secondary *string
	CreatedAt string
}
