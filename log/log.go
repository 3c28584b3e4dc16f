// Package log is a thin structured-logging wrapper over zerolog: a Logger
// handle plus a convention for logging a struct-as-event (see Msg) rather
// than a printf-style message.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Msg is embedded (by pointer) in structured log-event types, with a `txt`
// tag naming the fixed human-readable message. The Logger does not read the
// tag: the whole struct is logged as one value under the "detail" key.
type Msg struct{}

// Logger wraps zerolog.Logger with the three levels this engine uses:
// Trace for per-transition tracing, Warn for rejected transactions and
// Error for surfaced failures.
type Logger struct {
	z zerolog.Logger
}

func New(w io.Writer, level zerolog.Level) Logger {
	if w == nil {
		w = os.Stderr
	}
	z := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return Logger{z: z}
}

func Global() Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}

func (l Logger) Trace(msg interface{}) {
	l.event(l.z.Trace(), msg)
}

func (l Logger) Warn(msg interface{}) {
	l.event(l.z.Warn(), msg)
}

func (l Logger) Error(msg interface{}, err error) {
	ev := l.z.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	l.event(ev, msg)
}

func (l Logger) event(ev *zerolog.Event, msg interface{}) {
	ev.Interface("detail", msg).Send()
}

func (l Logger) WithLevel(level zerolog.Level) Logger {
	return Logger{z: l.z.Level(level)}
}
