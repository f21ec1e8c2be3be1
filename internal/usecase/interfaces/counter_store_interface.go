package interfaces

import "context"

// ICounterStore is the persisted process-wide counter service. Next returns
// floor+1 on first use and increments atomically afterwards.

type ICounterStore interface {
	Next(ctx context.Context, name string, floor int) (int, error)
}
