package interfaces

import "context"

// IBoardOrderRepository stores the manual per-bucket card ordering. Pure
// presentation state: erasing it loses no data, the board falls back to row
// order.

type IBoardOrderRepository interface {
	Save(ctx context.Context, bucket string, keys []string) error
	GetAll(ctx context.Context) (map[string][]string, error)
}
