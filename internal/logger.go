package internal

import (
	"io"

	"github.com/osuushi/polyfill/dbg"
	"github.com/sirupsen/logrus"
)

// The package logs nothing unless a logger is installed with SetLogger.
var logger = newSilentLogger()

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Install the logger used for fill diagnostics. nil restores the silent
// default. Not safe to call concurrently with fills.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	logger = l
}

func Logger() *logrus.Logger {
	return logger
}

// Polygons are named by their vertex storage, so copies of a Polygon value
// share a name.
func polygonName(poly Polygon) string {
	if len(poly.Points) == 0 {
		return dbg.Name(nil)
	}
	return dbg.Name(&poly.Points[0])
}
