package publisher

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
)

func TestJSONFeedPerCategory(t *testing.T) {
	opts := testOptions(t)
	data := newTestData(t)
	p := NewJSONFeedPublisher(opts)

	if err := p.Update(context.Background(), data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Written()) != 2 {
		t.Fatalf("expected 2 feeds, got %v", p.Written())
	}

	raw, err := os.ReadFile(filepath.Join(opts.JSONDir, "movies.json"))
	if err != nil {
		t.Fatal(err)
	}
	var feed Feed
	if err := json.Unmarshal(raw, &feed); err != nil {
		t.Fatalf("invalid feed: %v", err)
	}
	if feed.Category != "movies" || feed.Hash != data.Hash() || len(feed.Items) != 3 {
		t.Fatalf("unexpected feed %+v", feed)
	}
	if !feed.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("unexpected generated_at %v", feed.GeneratedAt)
	}
	if feed.Informations["source"] != "test" {
		t.Fatalf("unexpected informations %v", feed.Informations)
	}
	if len(feed.Items[1].GenresEmoji) != 2 || feed.Items[1].LangsFlag[0] != "em-gb" {
		t.Fatalf("enrichment missing from feed item %+v", feed.Items[1])
	}

	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatal(err)
	}
	first := generic["items"].([]any)[0].(map[string]any)
	if first["imdb_id"] != "tt6751668" {
		t.Fatalf("expected snake_case keys, got %v", first)
	}
}

func TestJSONFeedDryRun(t *testing.T) {
	opts := testOptions(t)
	opts.DryRun = true
	p := NewJSONFeedPublisher(opts)

	if err := p.Update(context.Background(), newTestData(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, _ := os.ReadDir(opts.JSONDir)
	if len(entries) != 0 || len(p.Written()) != 0 {
		t.Fatalf("dry run wrote files: %v", entries)
	}
}
