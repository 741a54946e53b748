// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger from the environment.
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json switches to
// the JSON formatter, anything else uses the text formatter.
func Init() {
	InitWith(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// InitWith configures the global logger explicitly
func InitWith(levelName, format string, out io.Writer) {
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

// Entity returns a log entry tagged with an entity id and name.
func Entity(id uint64, name string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"entity": id,
		"name":   name,
	})
}
