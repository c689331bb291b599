package publisher

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/emoji"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
)

var fixedNow = time.Date(2020, 5, 4, 12, 0, 0, 0, time.UTC)

func testOptions(t *testing.T) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		WebsiteDir: dir,
		JSONDir:    dir,
		Rand:       util.SeededRand(1),
		Now:        func() time.Time { return fixedNow },
		Logger:     zap.NewNop(),
	}
}

func newTestData(t *testing.T, extra ...*domain.CategoryItems) *trends.MediaTrendsData {
	t.Helper()
	tagger := domain.WithTagger(emoji.NewTagger(util.SeededRand(3)))

	movies, err := domain.NewCategoryItems(domain.CategoryMovies, []domain.MediaRecord{
		{Title: "Parasite", ImdbID: "tt6751668", Year: domain.IntPtr(2019), Rating: domain.Float64Ptr(8.5),
			Genres: []string{"Drama"}, LanguageCodes: []string{"ko"},
			ValidDate: domain.TimePtr(time.Date(2020, 5, 3, 0, 0, 0, 0, time.UTC))},
		{Title: "Tenet", ImdbID: "tt6723592", Year: domain.IntPtr(2020), Rating: domain.Float64Ptr(7.4),
			Genres: []string{"Action", "Sci-Fi"}, LanguageCodes: []string{"en"}},
		{Title: "Heat", ImdbID: "tt0113277", Year: domain.IntPtr(1995), Rating: domain.Float64Ptr(8.3),
			Genres: []string{"Crime"}, CoverURL: "https://img/heat.jpg"},
	}, tagger)
	if err != nil {
		t.Fatal(err)
	}
	series, err := domain.NewCategoryItems(domain.CategorySeries, []domain.MediaRecord{
		{Title: "Dark", ImdbID: "tt5753856", Year: domain.IntPtr(2017), LanguageCodes: []string{"de"}},
	}, tagger)
	if err != nil {
		t.Fatal(err)
	}

	data := trends.New(nil, zap.NewNop())
	data.SetInformations(map[string]string{"source": "test"})
	if err := data.SetCategories(context.Background(), append([]*domain.CategoryItems{movies, series}, extra...)...); err != nil {
		t.Fatal(err)
	}
	return data
}
