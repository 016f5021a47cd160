package utils

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the server-wide logger.
var Log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetLevel applies LOG_LEVEL; unknown names keep the current level.
func SetLevel(level string) {
	if lvl, err := logrus.ParseLevel(strings.TrimSpace(level)); err == nil {
		Log.SetLevel(lvl)
	}
}

// LogEvent writes one line tagged with module/action/request_id.
// Keep message short and free of form payloads.
func LogEvent(requestID, module, action, message string) {
	Log.WithFields(logrus.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}
