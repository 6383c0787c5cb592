// Package debuglog provides the opt-in diagnostic sink used while
// resolving configuration paths.
//
// Output is enabled by the presence of CFG_DEBUG in the environment. The
// variable is read once, when the Logger is built, and the resulting
// Logger is passed explicitly to whatever needs to trace.
package debuglog

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvVar enables debug output when present, whatever its value (empty included).
const EnvVar = "CFG_DEBUG"

// Marker prefixes every debug line.
const Marker = "[CONFIG DEBUG]: "

// Logger writes one Marker-prefixed line per message when enabled.
// A nil *Logger is valid and discards everything.
type Logger struct {
	log     *logrus.Logger
	enabled bool
}

// New creates a Logger writing to w.
func New(w io.Writer, enabled bool) *Logger {
	lg := logrus.New()
	lg.SetOutput(w)
	lg.SetFormatter(markerFormatter{})
	lg.SetLevel(logrus.DebugLevel)
	return &Logger{log: lg, enabled: enabled}
}

// FromEnv creates a Logger that is enabled when CFG_DEBUG is set.
func FromEnv(w io.Writer) *Logger {
	_, set := os.LookupEnv(EnvVar)
	return New(w, set)
}

// Enabled reports whether messages are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled && l.log != nil
}

// Log writes message as a single debug line.
func (l *Logger) Log(message string) {
	if !l.Enabled() {
		return
	}
	l.log.Debug(message)
}

// Logf formats and writes a single debug line.
func (l *Logger) Logf(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	l.log.Debugf(format, args...)
}

// lineBreaks flattens embedded line breaks so each message stays on one line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// markerFormatter renders entries as "[CONFIG DEBUG]: <message>\n",
// dropping level, time and fields.
type markerFormatter struct{}

func (markerFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	msg := lineBreaks.Replace(strings.TrimRight(entry.Message, "\r\n"))
	return []byte(Marker + msg + "\n"), nil
}
