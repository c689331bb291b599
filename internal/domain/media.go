package domain

import (
	"time"

	"github.com/kapu/mediatrends-publishers-go/internal/emoji"
)

// MediaRecord is one trending movie or series. GenresEmoji and LangsFlag are
// derived from Genres and LanguageCodes and are recomputed on enrichment.
type MediaRecord struct {
	Title         string     `json:"title"`
	ImdbID        string     `json:"imdb_id"`
	Rating        *float64   `json:"rating,omitempty"`
	Year          *int       `json:"year,omitempty"`
	CoverURL      string     `json:"cover_url,omitempty"`
	Score         *float64   `json:"score,omitempty"`
	ValidDate     *time.Time `json:"valid_date,omitempty"`
	Genres        []string   `json:"genres,omitempty"`
	LanguageCodes []string   `json:"language_codes,omitempty"`

	GenresEmoji []emoji.GenreEmoji `json:"genres_emoji"`
	LangsFlag   []string           `json:"langs_flag"`
}

// IsRecent reports whether the record was released in or after year.
// Records without a year are not recent.
func (m MediaRecord) IsRecent(year int) bool {
	return m.Year != nil && *m.Year >= year
}

func (m *MediaRecord) enrich(t *emoji.Tagger) {
	if t == nil {
		t = emoji.Default()
	}
	m.GenresEmoji = t.Genres(m.Genres)
	m.LangsFlag = t.Languages(m.LanguageCodes)
}

// Float64Ptr, IntPtr and TimePtr help building optional record fields.
func Float64Ptr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }

func TimePtr(v time.Time) *time.Time { return &v }
