package debug

// Memory/RSS periodic logger enabled when config.Debug is true.
// Logs resident memory along with Go heap stats and the image cache counters,
// so Tk photo buffers held natively can be told apart from decoded images on
// the Go heap.

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
)

// StartMemLogger launches a goroutine that logs memory stats every interval.
// It is best-effort; failures to query RSS are logged once and suppressed.
func StartMemLogger(interval time.Duration, logger *slog.Logger, stats StatsFunc) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var rssErrLogged bool
		for range ticker.C {
			rss, err := residentBytes()
			if err != nil && !rssErrLogged {
				logger.Warn("memlog: resident memory query failed", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("memstats", memAttrs(rss, stats)...)
		}
	}()
}

func memAttrs(rss uint64, stats StatsFunc) []any {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []any{
		slog.Int("goroutines", runtime.NumGoroutine()),
		slog.String("heap_alloc", humanize.Bytes(ms.HeapAlloc)),
		slog.String("heap_inuse", humanize.Bytes(ms.HeapInuse)),
		slog.String("heap_idle", humanize.Bytes(ms.HeapIdle)),
		slog.String("heap_sys", humanize.Bytes(ms.HeapSys)),
		slog.String("next_gc", humanize.Bytes(ms.NextGC)),
		slog.String("rss", humanize.Bytes(rss)),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
	if a, ok := cacheAttr(stats); ok {
		attrs = append(attrs, a)
	}
	return attrs
}
