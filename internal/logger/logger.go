// Package logger builds the logrus entries used by the services. Every entry
// carries a "component" field so background refresh runs can be told apart
// from UI events in the output.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = logrus.InfoLevel

// New returns a text-formatted entry for component at the given level.
func New(level string, component string) *logrus.Entry {
	return NewWithOutput(os.Stderr, level, component)
}

// NewWithOutput is New writing to out.
func NewWithOutput(out io.Writer, level string, component string) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(out)
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithError(err).Warnf("unknown log level %q, using %s", level, DefaultLevel)
		lvl = DefaultLevel
	}
	l.SetLevel(lvl)

	return logrus.NewEntry(l).WithField("component", component)
}

// Discard returns an entry that drops everything; used by tests and as a
// fallback when no logger is supplied.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
