package bqschema

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Sink receives the per-column progress lines emitted during generation,
// in input column order.
type Sink interface {
	Emit(line string)
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(line string)

func (f SinkFunc) Emit(line string) { f(line) }

// WriterSink writes each line, newline-terminated, to w.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(line string) {
		fmt.Fprintln(w, line)
	})
}

// LogSink forwards each line to log at info level.
func LogSink(log zerolog.Logger) Sink {
	return SinkFunc(func(line string) {
		log.Info().Msg(line)
	})
}

func emit(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Emit(fmt.Sprintf(format, args...))
}
