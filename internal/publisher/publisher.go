// Package publisher renders a MediaTrendsData into static artifacts.
package publisher

import (
	"time"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/util"
)

// Options carries what publishers need from the run configuration.
type Options struct {
	WebsiteDir  string
	JSONDir     string
	TemplateDir string
	// DryRun renders every artifact but writes nothing.
	DryRun bool
	Rand   util.Rand
	Now    func() time.Time
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = util.DefaultRand()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
