package publisher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/constants"
	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

const websitePublisherName = "StaticWebsitePublisher"

// pageVars is what website templates see.
type pageVars struct {
	Category      string
	Items         []domain.MediaRecord
	Recent        []domain.MediaRecord
	Older         []domain.MediaRecord
	Infos         map[string]string
	Hash          string
	MaxValidDate  *time.Time
	GeneratedAt   time.Time
	NavItemActual string
	NavItemOld    string
	Subtitle      string
}

// StaticWebsitePublisher renders one HTML page per known category into the
// website directory.
type StaticWebsitePublisher struct {
	engine    *TemplateEngine
	outputDir string
	dryRun    bool
	rnd       util.Rand
	now       func() time.Time
	logger    *zap.Logger

	mu      sync.Mutex
	data    *trends.MediaTrendsData
	outputs map[string][]byte
}

func NewStaticWebsitePublisher(opts Options) *StaticWebsitePublisher {
	opts = opts.withDefaults()
	return &StaticWebsitePublisher{
		engine:    NewTemplateEngine(opts.TemplateDir),
		outputDir: opts.WebsiteDir,
		dryRun:    opts.DryRun,
		rnd:       opts.Rand,
		now:       opts.Now,
		logger:    opts.Logger.With(zap.String("publisher", websitePublisherName)),
		outputs:   make(map[string][]byte),
	}
}

func (p *StaticWebsitePublisher) Name() string {
	return websitePublisherName
}

// Update stores the dataset and publishes it.
func (p *StaticWebsitePublisher) Update(ctx context.Context, data *trends.MediaTrendsData) error {
	if data == nil {
		return errors.NewInvalidArgumentError("data must not be nil", "data", nil)
	}
	p.mu.Lock()
	p.data = data
	p.mu.Unlock()
	return p.Publish(ctx)
}

// Data returns the dataset of the last Update.
func (p *StaticWebsitePublisher) Data() *trends.MediaTrendsData {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data
}

// Output returns the last page rendered with the given template name.
func (p *StaticWebsitePublisher) Output(templateName string) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	out, ok := p.outputs[templateName]
	return out, ok
}

// Publish renders every category that has a template. Failures are logged
// per category and do not stop the others.
func (p *StaticWebsitePublisher) Publish(ctx context.Context) error {
	data := p.Data()
	if data == nil {
		return errors.NewInvalidArgumentError("nothing to publish, Update was never called", "data", nil)
	}

	for _, name := range data.CategoryNames() {
		if err := ctx.Err(); err != nil {
			return err
		}

		templateName, ok := constants.Website.Templates[name]
		if !ok {
			p.logger.Debug("No template for category, skipped", zap.String("category", name))
			continue
		}

		if err := p.publishCategory(data, data.Category(name), templateName); err != nil {
			p.logger.Error("Error while publishing one page website",
				zap.String("category", name),
				zap.String("template", templateName),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (p *StaticWebsitePublisher) publishCategory(data *trends.MediaTrendsData, items *domain.CategoryItems, templateName string) error {
	vars := p.buildVars(data, items)

	out, err := p.engine.Render(templateName, vars)
	if err != nil {
		if errors.IsResourceNotFound(err) {
			return err
		}
		return errors.NewRenderError("render failed", websitePublisherName, items.Category(), err)
	}

	p.mu.Lock()
	p.outputs[templateName] = out
	p.mu.Unlock()

	file := templateName + ".html"
	if p.dryRun {
		p.logger.Info("Test mode: page rendered, not written",
			zap.String("file", file),
			zap.Int("bytes", len(out)),
		)
		return nil
	}

	if err := util.WriteFileAtomic(p.outputDir, file, out); err != nil {
		return errors.NewRenderError("write failed", websitePublisherName, items.Category(), err)
	}

	p.logger.Info("Page published",
		zap.String("path", filepath.Join(p.outputDir, file)),
		zap.Int("items", len(vars.Items)),
	)
	return nil
}

func (p *StaticWebsitePublisher) buildVars(data *trends.MediaTrendsData, items *domain.CategoryItems) pageVars {
	records := items.Items()
	vars := pageVars{
		Category:      items.Category(),
		Items:         records,
		Recent:        make([]domain.MediaRecord, 0, len(records)),
		Older:         make([]domain.MediaRecord, 0, len(records)),
		Infos:         data.Informations(),
		Hash:          data.Hash(),
		MaxValidDate:  items.MaxValidDate(),
		GeneratedAt:   p.now().UTC(),
		NavItemActual: util.Choice(p.rnd, constants.Taglines.NavItemActual),
		NavItemOld:    util.Choice(p.rnd, constants.Taglines.NavItemOld),
		Subtitle:      util.Choice(p.rnd, constants.Taglines.Subtitle),
	}
	for _, r := range records {
		if r.IsRecent(constants.Website.RecentYear) {
			vars.Recent = append(vars.Recent, r)
		} else {
			vars.Older = append(vars.Older, r)
		}
	}
	return vars
}
