package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/logx"
)

// NewLogger builds the process logger from cfg.Log.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	switch strings.ToLower(cfg.Log.Backend) {
	case "zap":
		return logx.NewZapProduction(cfg.Log.Level)
	case "", "slog":
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Log.Level, err)
		}
		base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: lvl,
		}))
		return logx.NewSlogAdapter(base), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Log.Backend)
	}
}
