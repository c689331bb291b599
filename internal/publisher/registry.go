package publisher

import (
	"sort"
	"strings"
	"sync"

	"github.com/kapu/mediatrends-publishers-go/internal/constants"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
)

// Factory builds a fresh publisher for one run.
type Factory func(opts Options) trends.Publisher

// Registry stores publisher factories keyed by their CLI names.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	opts      Options
}

// NewRegistry constructs an empty registry. opts is handed to every factory.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		opts:      opts.withDefaults(),
	}
}

// NewDefaultRegistry registers the built-in "website" and "json" publishers.
func NewDefaultRegistry(opts Options) *Registry {
	r := NewRegistry(opts)
	r.Register(constants.PublisherNames.Website, func(o Options) trends.Publisher {
		return NewStaticWebsitePublisher(o)
	})
	r.Register(constants.PublisherNames.JSON, func(o Options) trends.Publisher {
		return NewJSONFeedPublisher(o)
	})
	return r
}

// Register adds a factory. Names are stored in lowercase form to provide
// case-insensitive lookups.
func (r *Registry) Register(name string, factory Factory) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || factory == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Resolve builds a publisher per known name, in the given order and without
// duplicates. Unknown names are returned separately.
func (r *Registry) Resolve(names []string) ([]trends.Publisher, []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(names))
	publishers := make([]trends.Publisher, 0, len(names))
	var unknown []string

	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		factory, ok := r.factories[name]
		if !ok {
			unknown = append(unknown, raw)
			continue
		}
		publishers = append(publishers, factory(r.opts))
	}
	return publishers, unknown
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
