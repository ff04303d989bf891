// Package logging builds the run-scoped loggers handed to each pipeline
// component. Nothing here touches the logrus standard logger.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/sirupsen/logrus"
)

const (
	timeLayout = "2006-01-02 15:04:05"
	nameField  = "name"
)

// Options selects verbosity and sink. An empty File logs to Stderr.
type Options struct {
	Name  string
	Level string
	File  string

	// Stderr overrides os.Stderr, mostly for tests.
	Stderr io.Writer
}

// Logger pairs the entry components log through with whatever sink it owns.
type Logger struct {
	logrus.FieldLogger
	file *os.File
}

// New creates a logger at the requested level. A log file is opened in append
// mode so successive runs accumulate.
func New(opts Options) (*Logger, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}
	level, err := logrus.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("unsupported log level %q: %w", opts.Level, err))
	}

	base := logrus.New()
	base.SetLevel(level)
	base.SetFormatter(&PipeFormatter{})

	out := &Logger{}
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, pfx.Err(err)
		}
		base.SetOutput(f)
		out.file = f
	case opts.Stderr != nil:
		base.SetOutput(opts.Stderr)
	default:
		base.SetOutput(os.Stderr)
	}

	out.FieldLogger = base.WithField(nameField, opts.Name)

	return out, nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// PipeFormatter renders `time|LEVEL   |name |message`.
type PipeFormatter struct{}

func (f *PipeFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	name, _ := entry.Data[nameField].(string)
	fmt.Fprintf(&b, "%s|%-8s|%s |%s",
		entry.Time.Format(timeLayout),
		strings.ToUpper(entry.Level.String()),
		name,
		strings.TrimRight(entry.Message, "\n"),
	)

	for k, v := range entry.Data {
		if k == nameField {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}
