package logging

import (
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger builds the process-wide logger. Calling it again replaces the
// previous instance and closes its file.
func InitLogger(config *LogConfig) error {
	l, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	prev := instance
	instance = l
	mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// GetGlobalLogger returns the process-wide logger. Before InitLogger is
// called it returns a stdout logger at info level so early messages are not lost.
func GetGlobalLogger() *Logger {
	mu.RLock()
	l := instance
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = New(os.Stdout, LevelInfo)
	}
	return instance
}
