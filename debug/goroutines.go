package debug

// Debug runtime logger. Started only when config.Debug is true.
// Emits goroutine count, stack and heap usage plus the image cache counters
// at a fixed interval, to tell decoded-image retention apart from leaks.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/soocke/patch-cropper-go/domain/catalog"
)

// StatsFunc returns a snapshot of the image cache counters.
type StatsFunc func() catalog.CacheStats

// StartGoroutineLogger launches a ticker that logs goroutine count, stack memory
// and cache stats. stats may be nil.
func StartGoroutineLogger(interval time.Duration, logger *slog.Logger, stats StatsFunc) {
	if interval <= 0 {
		interval = time.Second
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			logger.Info("goroutine-stacks", runtimeAttrs(samples[0].Value.Uint64(), stats)...)
		}
	}()
}

func runtimeAttrs(goroutines uint64, stats StatsFunc) []any {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Uint64("goroutines", goroutines),
		slog.String("stack_inuse", humanize.Bytes(ms.StackInuse)),
		slog.String("stack_sys", humanize.Bytes(ms.StackSys)),
		slog.String("heap_alloc", humanize.Bytes(ms.HeapAlloc)),
	}
	if a, ok := cacheAttr(stats); ok {
		attrs = append(attrs, a)
	}
	return attrs
}

// cacheAttr groups the image cache counters. ok is false when stats is nil.
func cacheAttr(stats StatsFunc) (slog.Attr, bool) {
	if stats == nil {
		return slog.Attr{}, false
	}
	s := stats()
	return slog.Group("image_cache",
		slog.Uint64("hits", s.Hits),
		slog.Uint64("misses", s.Misses),
		slog.Int("entries", s.Entries),
	), true
}
