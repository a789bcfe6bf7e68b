package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It is usable before InitLogger runs.
var Log = logrus.New()

func InitLogger(level string, outputs ...io.Writer) {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if len(outputs) > 0 {
		Log.SetOutput(io.MultiWriter(append([]io.Writer{os.Stdout}, outputs...)...))
	}
}
