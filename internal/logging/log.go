// Package logging is a thin structured-logging wrapper around logrus,
// exposing a CPrint(level, message, LogFormat{...}) call shape for
// structured fields alongside a free-form message.
package logging

import (
	"os"
	"path/filepath"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// Level mirrors logrus' level ordering under names the rest of this
// module calls by.
type Level uint32

const (
	FATAL Level = iota
	ERROR
	WARN
	INFO
	DEBUG
	TRACE
)

func (l Level) logrus() logrus.Level {
	switch l {
	case FATAL:
		return logrus.FatalLevel
	case ERROR:
		return logrus.ErrorLevel
	case WARN:
		return logrus.WarnLevel
	case INFO:
		return logrus.InfoLevel
	case DEBUG:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// LogFormat carries the structured fields attached to one log line.
type LogFormat map[string]interface{}

var std = logrus.New()

func init() {
	std.SetLevel(logrus.InfoLevel)
	std.SetOutput(os.Stderr)
	std.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// CPrint emits one structured log line at the given level.
func CPrint(level Level, msg string, fields LogFormat) {
	std.WithFields(logrus.Fields(fields)).Log(level.logrus(), msg)
}

// SetLevel adjusts the minimum level CPrint actually emits.
func SetLevel(level Level) {
	std.SetLevel(level.logrus())
}

// AddRotatingFileHook directs log output to dir as well, rotated daily
// and retained for seven days, using the same rotatelogs+lfshook pairing
// the host repo wires its file logging with.
func AddRotatingFileHook(dir string, level Level) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	pattern := filepath.Join(dir, "scriptvm.%Y%m%d.log")
	writer, err := rotatelogs.New(
		pattern,
		rotatelogs.WithLinkName(filepath.Join(dir, "scriptvm.log")),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return err
	}

	writerMap := lfshook.WriterMap{}
	for _, lv := range []logrus.Level{
		logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel,
		logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel,
	} {
		if lv <= level.logrus() {
			writerMap[lv] = writer
		}
	}

	std.AddHook(lfshook.NewHook(writerMap, &logrus.TextFormatter{FullTimestamp: true}))
	return nil
}
