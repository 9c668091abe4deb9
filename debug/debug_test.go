package debug

import (
	"log/slog"
	"testing"

	"github.com/soocke/patch-cropper-go/domain/catalog"
)

func TestRuntimeAttrs_IncludesCacheStats(t *testing.T) {
	attrs := runtimeAttrs(3, func() catalog.CacheStats {
		return catalog.CacheStats{Hits: 5, Misses: 2, Entries: 1}
	})
	var group *slog.Attr
	for _, a := range attrs {
		if attr, ok := a.(slog.Attr); ok && attr.Key == "image_cache" {
			group = &attr
		}
	}
	if group == nil {
		t.Fatalf("image_cache group missing: %v", attrs)
	}
	got := map[string]string{}
	for _, a := range group.Value.Group() {
		got[a.Key] = a.Value.String()
	}
	if got["hits"] != "5" || got["misses"] != "2" || got["entries"] != "1" {
		t.Fatalf("unexpected cache attrs %v", got)
	}
}

func TestRuntimeAttrs_NilStats(t *testing.T) {
	if n := len(runtimeAttrs(1, nil)); n != 4 {
		t.Fatalf("expected 4 attrs without stats, got %d", n)
	}
}
