package publisher

import (
	"reflect"
	"testing"
)

func TestDefaultRegistryNames(t *testing.T) {
	r := NewDefaultRegistry(Options{})
	if got := r.Names(); !reflect.DeepEqual(got, []string{"json", "website"}) {
		t.Fatalf("unexpected names %v", got)
	}
	if !r.Has("WebSite") || r.Has("twitter") {
		t.Fatal("lookup must be case-insensitive and exact")
	}
}

func TestResolveKeepsOrderAndReportsUnknown(t *testing.T) {
	r := NewDefaultRegistry(Options{})

	pubs, unknown := r.Resolve([]string{" JSON", "twitter", "website", "json", ""})
	if len(pubs) != 2 {
		t.Fatalf("expected 2 publishers, got %d", len(pubs))
	}
	if pubs[0].Name() != "JSONFeedPublisher" || pubs[1].Name() != "StaticWebsitePublisher" {
		t.Fatalf("unexpected order %s, %s", pubs[0].Name(), pubs[1].Name())
	}
	if !reflect.DeepEqual(unknown, []string{"twitter"}) {
		t.Fatalf("unexpected unknown names %v", unknown)
	}
}

func TestResolveBuildsFreshInstances(t *testing.T) {
	r := NewDefaultRegistry(Options{})
	a, _ := r.Resolve([]string{"website"})
	b, _ := r.Resolve([]string{"website"})
	if a[0] == b[0] {
		t.Fatal("each resolve must build a new publisher")
	}
}

func TestRegisterIgnoresInvalid(t *testing.T) {
	r := NewRegistry(Options{})
	r.Register("", nil)
	r.Register("x", nil)
	if len(r.Names()) != 0 {
		t.Fatalf("expected empty registry, got %v", r.Names())
	}
}
