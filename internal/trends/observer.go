package trends

import "context"

// Publisher receives a dataset when it changed since the last publish.
type Publisher interface {
	// Update is called once per changed notify cycle, in registration order.
	Update(ctx context.Context, data *MediaTrendsData) error
	// Name is the display name used in logs.
	Name() string
}

// HashStore persists the fingerprint of the last published dataset.
type HashStore interface {
	// Load returns the stored hash. ok is false when nothing was stored yet.
	Load(ctx context.Context) (hash string, ok bool, err error)
	Save(ctx context.Context, hash string) error
}
