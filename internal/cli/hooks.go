package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sstucker/particles/pkg/observability"
)

// LogHooks reports conversion and cache events to a logger at debug level.
type LogHooks struct {
	logger *log.Logger
}

// Hooks returns observability hooks that write to the CLI logger.
func (c *CLI) Hooks() *LogHooks {
	return &LogHooks{logger: c.Logger}
}

func (h *LogHooks) OnConvertStart(_ context.Context, format string) {
	h.logger.Debug("Converting", "format", format)
}

func (h *LogHooks) OnConvertComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Conversion failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("Converted", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("Cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("Cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("Cached", "type", keyType, "bytes", size)
}

var (
	_ observability.ConvertHooks = (*LogHooks)(nil)
	_ observability.CacheHooks   = (*LogHooks)(nil)
)
