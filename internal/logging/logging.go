package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type Options struct {
	Level   string
	Service string
	// Output defaults to stdout.
	Output io.Writer
}

// New returns a JSON logger. Unknown levels fall back to info.
func New(o Options) *slog.Logger {
	out := o.Output
	if out == nil {
		out = os.Stdout
	}
	l := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: ParseLevel(o.Level)}))
	if o.Service != "" {
		l = l.With("service", o.Service)
	}
	return l
}

// ParseLevel accepts slog level names in any case, including offsets like "warn+2".
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

type ctxKey struct{}

func IntoContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext falls back to slog.Default so callers never get nil.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
