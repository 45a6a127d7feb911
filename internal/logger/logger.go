package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// Get returns the process-wide logger. The first call decides the level;
// later calls ignore their arguments. Output goes to stderr so the
// interactive menu on stdout stays clean.
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
	})
	return log
}
