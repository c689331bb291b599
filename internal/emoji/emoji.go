// Package emoji decorates media records with emoji stylesheet classes derived
// from their genres and spoken languages.
package emoji

import (
	"github.com/kapu/mediatrends-publishers-go/internal/util"
)

// GenreEmoji is the emoji picked for one genre of a record.
type GenreEmoji struct {
	Genre string `json:"genre"`
	Emoji string `json:"emoji"`
}

// Tagger picks genre emoji with its random source. Language flags do not
// need one.
type Tagger struct {
	rnd util.Rand
}

// NewTagger returns a tagger drawing from rnd, or from the process-wide
// source when rnd is nil.
func NewTagger(rnd util.Rand) *Tagger {
	if rnd == nil {
		rnd = util.DefaultRand()
	}
	return &Tagger{rnd: rnd}
}

var defaultTagger = NewTagger(nil)

// Default returns the tagger backed by the process-wide random source.
func Default() *Tagger {
	return defaultTagger
}

// Genres returns one emoji per known genre. Unknown genres and genres marked
// as having no emoji are skipped.
func (t *Tagger) Genres(genres []string) []GenreEmoji {
	result := make([]GenreEmoji, 0, len(genres))
	for _, g := range genres {
		key := util.Normalize(g)
		candidates, ok := genreCandidates[key]
		if !ok || len(candidates) == 0 {
			continue
		}
		result = append(result, GenreEmoji{
			Genre: key,
			Emoji: util.Choice(t.rnd, candidates),
		})
	}
	return result
}

// Languages delegates to the package-level Languages; flags need no randomness.
func (t *Tagger) Languages(codes []string) []string {
	return Languages(codes)
}

// Genres uses the default tagger.
func Genres(genres []string) []GenreEmoji {
	return defaultTagger.Genres(genres)
}

// Languages maps language codes to flag classes: "em-<code>" for flags the
// stylesheet names plainly, "em-flag-<code>" otherwise. Languages without a
// flag are skipped.
func Languages(codes []string) []string {
	result := make([]string, 0, len(codes))
	for _, c := range codes {
		code := util.Normalize(c)
		if code == "" {
			continue
		}
		if _, skip := languagePassList[code]; skip {
			continue
		}
		if alias, ok := languageAliases[code]; ok {
			code = alias
		}
		if _, plain := plainFlagNames[code]; plain {
			result = append(result, "em-"+code)
			continue
		}
		result = append(result, "em-flag-"+code)
	}
	return result
}

// GenreCandidates returns the emoji a genre may be tagged with and whether the
// genre is known at all.
func GenreCandidates(genre string) ([]string, bool) {
	candidates, ok := genreCandidates[util.Normalize(genre)]
	if !ok {
		return nil, false
	}
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out, true
}
