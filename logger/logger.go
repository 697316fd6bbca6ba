// Package logger provides the application log backed by a rotating file.
// Both front-ends own the terminal while running, so log output goes to the
// file only; stdout would corrupt the screen.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"sysmon/config"
)

// Logger wraps logrus with file rotation.
type Logger struct {
	*logrus.Logger
	file *lumberjack.Logger
}

var (
	instance *Logger
	once     sync.Once
)

// Get returns the singleton logger instance. Until Init is called it
// discards everything.
func Get() *Logger {
	once.Do(func() {
		l := logrus.New()
		l.SetOutput(io.Discard)
		instance = &Logger{Logger: l}
	})
	return instance
}

// Init configures level, format and the rotating log file. configDir
// anchors relative file paths.
func (l *Logger) Init(cfg *config.LoggingConfig, configDir string) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	logPath := cfg.FilePath
	if logPath == "" {
		return nil
	}
	if !filepath.IsAbs(logPath) {
		logPath = filepath.Join(configDir, logPath)
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	l.file = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	}
	l.SetOutput(l.file)
	return nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
		l.SetOutput(io.Discard)
		l.file = nil
	}
}
