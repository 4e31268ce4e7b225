package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/lurkdash/config"
	"github.com/sirupsen/logrus"
)

const (
	logFileName = "lurkdash.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes all logging to <dir>/lurkdash.log when debug is on and discards it otherwise
// A full-screen dashboard owns stdout, so nothing is ever logged there
// Returns the open log file, nil when logging is disabled or the file could not be opened
func setupLogging(cfg config.LogConfig) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logger.SetOutput(io.Discard)
	log.SetOutput(io.Discard)

	if !cfg.Debug {
		return logger, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return logger, nil
	}

	logPath := filepath.Join(cfg.Dir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logger, nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	log.SetOutput(logger.WriterLevel(logrus.InfoLevel))
	log.SetFlags(0)
	return logger, f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
