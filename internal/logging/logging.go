package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger writing to w in the requested format.
// format can be "text" (human-friendly console) or "json" (structured).
func Setup(format string, w io.Writer) zerolog.Logger {
	if format == "text" || format == "" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}
