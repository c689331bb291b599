// Package source acquires the dataset a publish run works on.
package source

import (
	"context"

	"github.com/kapu/mediatrends-publishers-go/internal/trends"
)

// Loader fills data with categories and informations. Implementations call
// SetCategories exactly once so the hash is computed over the full dataset.
type Loader interface {
	Load(ctx context.Context, data *trends.MediaTrendsData) error
	Name() string
}
