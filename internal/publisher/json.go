package publisher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

const jsonPublisherName = "JSONFeedPublisher"

// Feed is the document written per category.
type Feed struct {
	Category     string               `json:"category"`
	GeneratedAt  time.Time            `json:"generated_at"`
	Hash         string               `json:"hash"`
	MaxValidDate *time.Time           `json:"max_valid_date,omitempty"`
	Informations map[string]string    `json:"informations"`
	Items        []domain.MediaRecord `json:"items"`
}

// JSONFeedPublisher writes "<category>.json" feeds for client-side
// consumers.
type JSONFeedPublisher struct {
	outputDir string
	dryRun    bool
	now       func() time.Time
	logger    *zap.Logger
	written   []string
}

func NewJSONFeedPublisher(opts Options) *JSONFeedPublisher {
	opts = opts.withDefaults()
	return &JSONFeedPublisher{
		outputDir: opts.JSONDir,
		dryRun:    opts.DryRun,
		now:       opts.Now,
		logger:    opts.Logger.With(zap.String("publisher", jsonPublisherName)),
	}
}

func (p *JSONFeedPublisher) Name() string {
	return jsonPublisherName
}

// Written lists the files produced by the last Update.
func (p *JSONFeedPublisher) Written() []string {
	return append([]string(nil), p.written...)
}

func (p *JSONFeedPublisher) Update(ctx context.Context, data *trends.MediaTrendsData) error {
	if data == nil {
		return errors.NewInvalidArgumentError("data must not be nil", "data", nil)
	}
	p.written = p.written[:0]

	generatedAt := p.now().UTC()
	for _, name := range data.CategoryNames() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.publishCategory(data, data.Category(name), generatedAt); err != nil {
			p.logger.Error("Error while publishing json feed",
				zap.String("category", name),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (p *JSONFeedPublisher) publishCategory(data *trends.MediaTrendsData, items *domain.CategoryItems, generatedAt time.Time) error {
	name := items.Category()
	if filepath.Base(name) != name || name == "." || name == ".." {
		return errors.NewRenderError("category is not a valid file name", jsonPublisherName, name, nil)
	}

	feed := Feed{
		Category:     name,
		GeneratedAt:  generatedAt,
		Hash:         data.Hash(),
		MaxValidDate: items.MaxValidDate(),
		Informations: data.Informations(),
		Items:        items.Items(),
	}
	out, err := json.MarshalIndent(feed, "", "  ")
	if err != nil {
		return errors.NewRenderError("encode failed", jsonPublisherName, name, err)
	}

	file := name + ".json"
	if p.dryRun {
		p.logger.Info("Test mode: feed encoded, not written", zap.String("file", file), zap.Int("bytes", len(out)))
		return nil
	}
	if err := util.WriteFileAtomic(p.outputDir, file, out); err != nil {
		return errors.NewRenderError("write failed", jsonPublisherName, name, err)
	}

	path := filepath.Join(p.outputDir, file)
	p.written = append(p.written, path)
	p.logger.Info("Feed published", zap.String("path", path), zap.Int("items", len(feed.Items)))
	return nil
}
