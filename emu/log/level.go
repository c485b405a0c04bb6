package log

import (
	"io"

	"gopkg.in/Sirupsen/logrus.v0"
)

// Level mirrors logrus levels, from the most to the least severe.
type Level uint32

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func init() {
	// Filtering happens per module, logrus must let everything through.
	logrus.SetLevel(logrus.DebugLevel)
}

// SetOutput sets the destination of all log entries.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}
