// Package trends holds the dataset published on each run and decides, by
// fingerprint, whether publishers need to be notified at all.
package trends

import (
	"context"
	"fmt"
	"sort"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

// MediaTrendsData is the notification source of a publish run.
type MediaTrendsData struct {
	categories   map[string]*domain.CategoryItems
	informations map[string]string
	hash         string
	hashExists   bool

	store     HashStore
	observers []Publisher
	logger    *zap.Logger
}

func New(store HashStore, logger *zap.Logger) *MediaTrendsData {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaTrendsData{
		categories:   make(map[string]*domain.CategoryItems),
		informations: make(map[string]string),
		store:        store,
		logger:       logger,
	}
}

// SetCategories replaces all categories, keyed by name with the last one
// winning, then recomputes the hash.
func (d *MediaTrendsData) SetCategories(ctx context.Context, categories ...*domain.CategoryItems) error {
	mapped := make(map[string]*domain.CategoryItems, len(categories))
	for i, c := range categories {
		if c == nil {
			return errors.NewInvalidArgumentError("categories must not contain nil entries", "categories", i)
		}
		mapped[c.Category()] = c
	}
	d.categories = mapped
	return d.SetHash(ctx, d.CreateHash())
}

func (d *MediaTrendsData) Category(name string) *domain.CategoryItems {
	return d.categories[name]
}

// CategoryNames returns the category names in lexical order.
func (d *MediaTrendsData) CategoryNames() []string {
	names := make([]string, 0, len(d.categories))
	for name := range d.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *MediaTrendsData) Movies() *domain.CategoryItems {
	return d.categories[domain.CategoryMovies]
}

func (d *MediaTrendsData) Series() *domain.CategoryItems {
	return d.categories[domain.CategorySeries]
}

// Informations returns a copy of the informational key/values.
func (d *MediaTrendsData) Informations() map[string]string {
	out := make(map[string]string, len(d.informations))
	for k, v := range d.informations {
		out[k] = v
	}
	return out
}

func (d *MediaTrendsData) SetInformations(informations map[string]string) {
	d.informations = make(map[string]string, len(informations))
	for k, v := range informations {
		d.informations[k] = v
	}
}

func (d *MediaTrendsData) AddInformation(key, value string) {
	d.informations[key] = value
}

// CreateHash fingerprints the multiset of IMDb ids across all categories.
// Grouping and order of the records do not matter.
func (d *MediaTrendsData) CreateHash() string {
	var ids []string
	for _, c := range d.categories {
		ids = append(ids, c.ImdbIDs()...)
	}
	return fingerprint(ids)
}

// Hash returns the current hash, computing it when it was never set.
func (d *MediaTrendsData) Hash() string {
	if d.hash == "" {
		d.hash = d.CreateHash()
	}
	return d.hash
}

// SetHash sets the current hash and marks the dataset as already published
// when it matches the persisted one.
func (d *MediaTrendsData) SetHash(ctx context.Context, hash string) error {
	if hash == "" {
		return errors.NewInvalidArgumentError("hash must be a non-empty string", "hash", hash)
	}
	persisted, ok := d.OpenHash(ctx)
	d.hashExists = ok && persisted == hash
	d.hash = hash
	return nil
}

func (d *MediaTrendsData) HashExists() bool {
	return d.hashExists
}

// ClearHash forces the next Notify to call the publishers.
func (d *MediaTrendsData) ClearHash() {
	d.hashExists = false
}

// OpenHash reads the persisted hash. A missing record is not an error; other
// store failures are logged and treated as missing.
func (d *MediaTrendsData) OpenHash(ctx context.Context) (string, bool) {
	if d.store == nil {
		return "", false
	}
	hash, ok, err := d.store.Load(ctx)
	if err != nil {
		d.logger.Warn("Failed to read persisted hash, treating data as changed", zap.Error(err))
		return "", false
	}
	return hash, ok
}

// SaveHash overwrites the persisted hash with the current one.
func (d *MediaTrendsData) SaveHash(ctx context.Context) error {
	if d.store == nil {
		return fmt.Errorf("no hash store configured")
	}
	if err := d.store.Save(ctx, d.Hash()); err != nil {
		return fmt.Errorf("failed to save hash: %w", err)
	}
	return nil
}

// RegisterObserver appends p unless it is already registered.
func (d *MediaTrendsData) RegisterObserver(p Publisher) *MediaTrendsData {
	if p == nil {
		return d
	}
	if d.indexOf(p) >= 0 {
		d.logger.Debug("Publisher already registered", zap.String("publisher", p.Name()))
		return d
	}
	d.observers = append(d.observers, p)
	return d
}

// UnregisterObserver removes p. Unknown publishers are ignored.
func (d *MediaTrendsData) UnregisterObserver(p Publisher) {
	idx := d.indexOf(p)
	if idx < 0 {
		name := "<nil>"
		if p != nil {
			name = p.Name()
		}
		d.logger.Debug("Publisher is not registered", zap.String("publisher", name))
		return
	}
	d.observers = append(d.observers[:idx], d.observers[idx+1:]...)
}

// Observers returns the registered publishers in registration order.
func (d *MediaTrendsData) Observers() []Publisher {
	out := make([]Publisher, len(d.observers))
	copy(out, d.observers)
	return out
}

func (d *MediaTrendsData) indexOf(p Publisher) int {
	if p == nil {
		return -1
	}
	for i, o := range d.observers {
		if o == p {
			return i
		}
	}
	return -1
}

// Notify publishes the dataset when it changed. Publishers run sequentially
// in registration order; a failing or panicking publisher is logged and does
// not stop the others. The hash is saved only when every publisher
// succeeded, so a failed run is retried next time.
func (d *MediaTrendsData) Notify(ctx context.Context) error {
	if d.hashExists {
		d.logger.Info("Data unchanged since last publish, skipping",
			zap.String("hash", d.hash))
		return nil
	}

	var (
		failed []string
		causes []error
	)
	for _, p := range d.observers {
		if err := d.update(ctx, p); err != nil {
			d.logger.Error("Publisher failed",
				zap.String("publisher", p.Name()),
				zap.Error(err))
			failed = append(failed, p.Name())
			causes = append(causes, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		d.logger.Debug("Publisher notified", zap.String("publisher", p.Name()))
	}

	if len(failed) > 0 {
		d.logger.Warn("Hash not saved because publishers failed",
			zap.Strings("failed", failed))
		return errors.NewNotifyError(failed, causes)
	}

	if err := d.SaveHash(ctx); err != nil {
		return err
	}
	d.logger.Info("Published data",
		zap.String("hash", d.Hash()),
		zap.Int("publishers", len(d.observers)))
	return nil
}

func (d *MediaTrendsData) update(ctx context.Context, p Publisher) (err error) {
	var pc panics.Catcher
	pc.Try(func() {
		err = p.Update(ctx, d)
	})
	if r := pc.Recovered(); r != nil {
		return r.AsError()
	}
	return err
}
