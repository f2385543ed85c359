package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	LogFileName = "skii.log"
	// MaxLogSize triggers rotation of the previous log on startup
	MaxLogSize = 10 * 1024 * 1024
)

// SetupLogging returns the game logger. Output is discarded unless debug is
// set; the screen belongs to the game, so logs never go to stdout or stderr.
// The returned file is nil when logging is disabled.
func SetupLogging(dir string, debug bool) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}

	if !debug {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	path := filepath.Join(dir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("skii-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return logger, nil
	}

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	log.SetOutput(f)
	return logger, f
}
