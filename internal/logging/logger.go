package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"unidash-be/config"
)

const systemName = "unidash-be"

// Logger is the process-wide logger.
var Logger = logrus.New()

// EventFormatter writes one line per entry with a fresh event id.
type EventFormatter struct {
	SystemName string
}

func (f *EventFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	ts := entry.Time.UTC()
	fmt.Fprintf(b, "Date: %s, Time: %s, ", ts.Format("2006-01-02"), ts.Format("15:04:05"))
	fmt.Fprintf(b, "Event Source: %s, ", f.SystemName)
	fmt.Fprintf(b, "Event Type: %s, ", strings.ToUpper(entry.Level.String()))
	fmt.Fprintf(b, "Event ID: %s, ", uuid.New().String())
	fmt.Fprintf(b, "Message: %s", entry.Message)

	if len(entry.Data) > 0 {
		keys := make([]string, 0, len(entry.Data))
		for k := range entry.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, ", %s=%v", k, entry.Data[k])
		}
	}
	if entry.HasCaller() {
		fmt.Fprintf(b, ", Location: %s:%d", entry.Caller.File, entry.Caller.Line)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger configures Logger from cfg. Output goes to stdout, and also to a
// rotated file when LOG_FILE is set.
func InitLogger(cfg *config.Config) *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
	Logger.SetFormatter(&EventFormatter{SystemName: systemName})

	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	Logger.SetOutput(out)

	Logger.WithFields(logrus.Fields{
		"level": level.String(),
		"file":  cfg.LogFile,
	}).Info("logger initialized")
	return Logger
}
