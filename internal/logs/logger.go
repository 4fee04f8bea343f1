package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	// Level is one of debug, info, warn or error.
	Level string
	// Terminal receives human readable records. Nil disables it.
	Terminal io.Writer
	// File, when set, receives JSON records appended to it.
	File string
}

// New builds a logger fanning records out to the configured sinks. The
// returned closer releases the log file, if any.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(strings.ToUpper(opts.Level))); err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", opts.Level)
	}
	handlerOptions := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if opts.Terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Terminal, handlerOptions))
	}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "opening log file %s", opts.File)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, handlerOptions))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slogmulti.Fanout())
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
