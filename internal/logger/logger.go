package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level string
	File  string
}

type Logger struct {
	l *logrus.Logger
}

// New builds a logger writing to stderr, and additionally to a rotated
// file when conf.File is set.
func New(conf Config) *Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	l.SetLevel(level)

	if conf.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}

		l.SetOutput(io.MultiWriter(os.Stderr, rotated))
	}

	return &Logger{l: l}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	l.l.Errorf(format, v...)
}

func (l *Logger) LogInfo(format string, v ...any) {
	l.l.Infof(format, v...)
}
