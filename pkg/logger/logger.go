package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.InfoLevel)
	if os.Getenv("ENVIRONMENT") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}
}

// Configure switches the debug level on or off for the given environment.
func Configure(environment string) {
	if environment == "development" {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetLevel(logrus.InfoLevel)
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	log.Infof(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	log.Errorf(format, v...)
}

// Debug logs at debug level.
func Debug(format string, v ...interface{}) {
	log.Debugf(format, v...)
}

// Warn logs at warning level.
func Warn(format string, v ...interface{}) {
	log.Warnf(format, v...)
}

// WithFields returns an entry carrying fields for structured logging.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return log.WithFields(logrus.Fields(fields))
}

// MaskToken keeps the first characters of a credential so logs can correlate sessions.
func MaskToken(token string) string {
	if token == "" {
		return "<none>"
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}
