package publisher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kapu/mediatrends-publishers-go/internal/domain"
	"github.com/kapu/mediatrends-publishers-go/pkg/errors"
)

func TestTemplateFuncs(t *testing.T) {
	dir := t.TempDir()
	body := `{{truncate .Title 10}}|{{formatRating .Rating}}|{{formatYear .Year}}|{{formatDate .ValidDate}}`
	if err := os.WriteFile(filepath.Join(dir, "card.html"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := NewTemplateEngine(dir).Render("card", domain.MediaRecord{
		Title:  "The Lord of the Rings",
		Rating: domain.Float64Ptr(8.84),
		Year:   domain.IntPtr(2001),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(out); got != "The Lor...|8.8|2001|" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestTemplateEngineMissingTemplate(t *testing.T) {
	_, err := NewTemplateEngine(t.TempDir()).Load("index")
	if !errors.IsResourceNotFound(err) {
		t.Fatalf("expected resource not found, got %v", err)
	}
	_, err = NewTemplateEngine("").Load("nope")
	if !errors.IsResourceNotFound(err) {
		t.Fatalf("expected resource not found for builtin, got %v", err)
	}
}
