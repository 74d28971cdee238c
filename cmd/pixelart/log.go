package main

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wbrown/pixelart"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that writes
// to w and filters below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of one operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since newProgress, plus keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg pixelart.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext returns the config attached to ctx, or the defaults.
func configFromContext(ctx context.Context) pixelart.Config {
	if cfg, ok := ctx.Value(configKey).(pixelart.Config); ok {
		return cfg
	}
	return pixelart.DefaultConfig()
}
