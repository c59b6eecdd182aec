// Package log provides the prefixed, colored loggers used by every component.
package log

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/beka-birhanu/rabbit-run/config"
	"github.com/beka-birhanu/rabbit-run/service/i"
	"github.com/sirupsen/logrus"
)

var _ i.Logger = &Logger{}

// Logger writes "[PREFIX] [LEVEL] message" lines through logrus.
type Logger struct {
	base *logrus.Logger
}

// New creates a logger whose lines start with prefix painted in color.
// level is a logrus level name such as "info" or "debug".
func New(prefix, color string, w io.Writer, level string) (*Logger, error) {
	if strings.TrimSpace(prefix) == "" {
		return nil, fmt.Errorf("logger prefix must not be empty")
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&prefixFormatter{prefix: prefix, color: color})

	return &Logger{base: l}, nil
}

// Debug implements i.Logger.
func (l *Logger) Debug(msg string) {
	l.base.Debug(msg)
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.base.Info(msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.base.Warn(msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.base.Error(msg)
}

// prefixFormatter renders entries the way the rest of the service prints its logs.
type prefixFormatter struct {
	prefix string
	color  string
}

// Format implements logrus.Formatter.
func (f *prefixFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s %s[%s]%s %s[%s]%s %s\n",
		e.Time.Format("2006/01/02 15:04:05"),
		f.color, f.prefix, config.ColorReset,
		levelColor(e.Level), strings.ToUpper(levelName(e.Level)), config.LogColorReset,
		e.Message,
	)
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "warning"
	}
	return l.String()
}

func levelColor(l logrus.Level) string {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return config.LogErrorColor
	case logrus.WarnLevel:
		return config.LogWarnColor
	case logrus.InfoLevel:
		return config.LogInfoColor
	default:
		return config.LogDebugColor
	}
}
