package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

var (
	logger = tmlog.NewNopLogger()
	mu     sync.RWMutex
)

// InitLogger logs to stdout at the given level (debug, info, error or none).
func InitLogger(level string) error {
	return setLogger(os.Stdout, level)
}

// ResetLogger moves the output to a log file under <home>/logs.
func ResetLogger(home, level string) error {
	dir := filepath.Join(home, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s.%d.log", filepath.Base(os.Args[0]), os.Getpid())
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Infof("from now on, all logs will be written to %s", path)

	return setLogger(file, level)
}

func setLogger(w *os.File, level string) error {
	option, err := tmlog.AllowLevel(level)
	if err != nil {
		return err
	}

	l := tmlog.NewFilter(tmlog.NewTMLogger(tmlog.NewSyncWriter(w)), option).With("module", "bandoracled")

	mu.Lock()
	logger = l
	mu.Unlock()

	return nil
}

// Logger returns the current logger.
func Logger() tmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return logger
}

func Debug(msg string, keyvals ...any) {
	Logger().Debug(msg, keyvals...)
}

func Debugf(format string, v ...any) {
	Logger().Debug(fmt.Sprintf(format, v...))
}

func Info(msg string, keyvals ...any) {
	Logger().Info(msg, keyvals...)
}

func Infof(format string, v ...any) {
	Logger().Info(fmt.Sprintf(format, v...))
}

func Error(msg string, keyvals ...any) {
	Logger().Error(msg, keyvals...)
}

func Errorf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
}

func Fatalf(format string, v ...any) {
	Logger().Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}
