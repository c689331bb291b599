package source

import (
	"context"
	"fmt"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
)

const fixtureCover = "https://picsum.photos/200/300"

// StaticLoader serves a fixed fixture, for trying publishers without a
// database.
type StaticLoader struct {
	opts []domain.CategoryOption
}

func NewStatic(opts ...domain.CategoryOption) *StaticLoader {
	return &StaticLoader{opts: opts}
}

func (s *StaticLoader) Name() string {
	return "static"
}

func (s *StaticLoader) Load(ctx context.Context, data *trends.MediaTrendsData) error {
	movies, err := domain.NewCategoryItems(domain.CategoryMovies, staticMovies(), s.opts...)
	if err != nil {
		return err
	}
	series, err := domain.NewCategoryItems(domain.CategorySeries, staticSeries(), s.opts...)
	if err != nil {
		return err
	}

	data.SetInformations(map[string]string{"source": "static"})
	if err := data.SetCategories(ctx, movies, series); err != nil {
		return fmt.Errorf("failed to set static categories: %w", err)
	}
	return nil
}

// Static fills data with the fixture using the default tagger.
func Static(ctx context.Context, data *trends.MediaTrendsData) error {
	return NewStatic().Load(ctx, data)
}

func staticMovies() []domain.MediaRecord {
	return []domain.MediaRecord{
		{
			Title:         "title_1",
			ImdbID:        "1234",
			Rating:        domain.Float64Ptr(7.2),
			Year:          domain.IntPtr(2020),
			CoverURL:      fixtureCover,
			Genres:        []string{"Action", "Comedy"},
			LanguageCodes: []string{"en"},
		},
		{
			Title:         "title_2",
			ImdbID:        "3241",
			Rating:        domain.Float64Ptr(4.6),
			Year:          domain.IntPtr(2019),
			CoverURL:      fixtureCover,
			Genres:        []string{"Drama"},
			LanguageCodes: []string{"fr", "en"},
		},
		{
			Title:         "title_1",
			ImdbID:        "4231",
			Rating:        domain.Float64Ptr(6.3),
			Year:          domain.IntPtr(2020),
			CoverURL:      fixtureCover,
			Genres:        []string{"Horror", "Thriller"},
			LanguageCodes: []string{"ja"},
		},
	}
}

func staticSeries() []domain.MediaRecord {
	return []domain.MediaRecord{
		{
			Title:         "series_1",
			ImdbID:        "5678",
			Rating:        domain.Float64Ptr(8.1),
			Year:          domain.IntPtr(2018),
			CoverURL:      fixtureCover,
			Genres:        []string{"Crime", "Drama"},
			LanguageCodes: []string{"en"},
		},
		{
			Title:         "series_2",
			ImdbID:        "8765",
			Rating:        domain.Float64Ptr(7.4),
			Year:          domain.IntPtr(2021),
			CoverURL:      fixtureCover,
			Genres:        []string{"Animation"},
			LanguageCodes: []string{"ko"},
		},
	}
}
