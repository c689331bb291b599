package source

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/internal/emoji"
	"github.com/kapu/mediatrends-publishers-go/internal/trends"
	"github.com/kapu/mediatrends-publishers-go/internal/util"
)

func TestStaticFixture(t *testing.T) {
	data := trends.New(nil, zap.NewNop())
	loader := NewStatic(domain.WithTagger(emoji.NewTagger(util.SeededRand(7))))

	if err := loader.Load(context.Background(), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := data.CategoryNames(); !reflect.DeepEqual(got, []string{"movies", "series"}) {
		t.Fatalf("unexpected categories %v", got)
	}
	if got := data.Movies().ImdbIDs(); !reflect.DeepEqual(got, []string{"1234", "3241", "4231"}) {
		t.Fatalf("unexpected movie ids %v", got)
	}
	if data.Series().Len() != 2 {
		t.Fatalf("expected 2 series, got %d", data.Series().Len())
	}

	first := data.Movies().Items()[0]
	if first.Title != "title_1" || *first.Rating != 7.2 || *first.Year != 2020 {
		t.Fatalf("unexpected first movie %+v", first)
	}
	if len(first.GenresEmoji) != 2 || !reflect.DeepEqual(first.LangsFlag, []string{"em-gb"}) {
		t.Fatalf("expected enriched record, got %+v", first)
	}
	if data.HashExists() {
		t.Fatal("hash must not exist without a store")
	}
}

func TestStaticHashIsStable(t *testing.T) {
	a := trends.New(nil, nil)
	b := trends.New(nil, nil)
	if err := Static(context.Background(), a); err != nil {
		t.Fatal(err)
	}
	if err := Static(context.Background(), b); err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("fixture hash differs: %s vs %s", a.Hash(), b.Hash())
	}
}
