package domain

import (
	"strings"
	"time"

	"github.com/kapu/mediatrends-publishers-go/internal/emoji"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

// Well-known category names.
const (
	CategoryMovies = "movies"
	CategorySeries = "series"
)

// CategoryItems holds the records of one category. Items are enriched when
// they are assigned or appended.
type CategoryItems struct {
	category string
	items    []MediaRecord
	tagger   *emoji.Tagger
}

type CategoryOption func(*CategoryItems)

// WithTagger sets the tagger used for genre emoji.
func WithTagger(t *emoji.Tagger) CategoryOption {
	return func(c *CategoryItems) {
		if t != nil {
			c.tagger = t
		}
	}
}

// NewCategoryItems validates the category name and enriches a copy of items.
func NewCategoryItems(category string, items []MediaRecord, opts ...CategoryOption) (*CategoryItems, error) {
	c := &CategoryItems{tagger: emoji.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.SetCategory(category); err != nil {
		return nil, err
	}
	c.SetItems(items)
	return c, nil
}

func (c *CategoryItems) Category() string {
	return c.category
}

// SetCategory rejects blank names.
func (c *CategoryItems) SetCategory(category string) error {
	if util.IsBlank(category) {
		return errors.NewInvalidArgumentError("category must be a non-empty string", "category", category)
	}
	c.category = strings.TrimSpace(category)
	return nil
}

// Items returns a copy of the records.
func (c *CategoryItems) Items() []MediaRecord {
	out := make([]MediaRecord, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CategoryItems) Len() int {
	return len(c.items)
}

// SetItems replaces the records with an enriched copy of items.
func (c *CategoryItems) SetItems(items []MediaRecord) {
	c.items = make([]MediaRecord, len(items))
	copy(c.items, items)
	c.Consolidate()
}

// Append enriches item and adds it at the end.
func (c *CategoryItems) Append(item MediaRecord) *CategoryItems {
	item.enrich(c.tagger)
	c.items = append(c.items, item)
	return c
}

// Consolidate re-runs enrichment on every record. Genre emoji are drawn
// again.
func (c *CategoryItems) Consolidate() {
	for i := range c.items {
		c.items[i].enrich(c.tagger)
	}
}

// ImdbIDs returns the non-empty IMDb ids in item order.
func (c *CategoryItems) ImdbIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if item.ImdbID != "" {
			ids = append(ids, item.ImdbID)
		}
	}
	return ids
}

// MaxValidDate returns the latest valid date among the records, or nil.
func (c *CategoryItems) MaxValidDate() *time.Time {
	var latest *time.Time
	for _, item := range c.items {
		if item.ValidDate == nil {
			continue
		}
		if latest == nil || item.ValidDate.After(*latest) {
			d := *item.ValidDate
			latest = &d
		}
	}
	return latest
}
