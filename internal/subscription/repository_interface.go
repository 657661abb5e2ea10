package subscription

import "context"

// Store is the persistence gateway for subscriptions.
type Store interface {
	ListAll(ctx context.Context) ([]Subscription, error)
	Get(ctx context.Context, id int64) (*Subscription, error)
	Create(ctx context.Context, sub *Subscription) (int64, error)
	Update(ctx context.Context, sub *Subscription) error
	Remove(ctx context.Context, id int64) error
	ReorderAll(ctx context.Context, subs []Subscription) error
	Count(ctx context.Context) (int, error)
}

var _ Store = (*Repository)(nil)
