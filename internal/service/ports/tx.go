package ports

import "context"

// Transactor runs fn so that repository calls made with the context passed
// to fn share one unit of work when the store supports it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
