package analyzer

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	formatConsole = "console"
	formatJSON    = "json"

	keyKey    = "key"
	keySize   = "size"
	keyHeight = "height"
)

// newLogger writing to w. Console output is uncolored so that it stays
// readable when stderr is captured.
func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
	}
	switch format {
	case formatJSON:
	case formatConsole:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
