package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const normalLogSize = 512

// Flags to modify Backend's behavior.
const (
	// LogFlagLongFile adds the full path and line number of the logging
	// callsite, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile adds the file name and line number of the logging
	// callsite, e.g. main.go:123. It takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// defaultFlags are read from the comma separated LOGFLAGS environment
// variable. It is a variable initializer since BackendLog is one too.
var defaultFlags = flagsFromEnvironment()

func flagsFromEnvironment() (flags uint32) {
	for _, f := range strings.Split(os.Getenv("LOGFLAGS"), ",") {
		switch f {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

// Rotation settings of AddLogFile. The tools write little, so the log
// files are kept small.
const (
	defaultThresholdKB = 10 * 1000
	defaultMaxRolls    = 3
)

// Backend serializes the messages of all its subsystem loggers and hands
// each one to every writer whose level lets it through.
type Backend struct {
	flag      uint32
	isRunning uint32
	writers   []logWriter
	writeChan chan logEntry
	syncClose sync.Mutex // held by the writing goroutine until it drains
}

type logWriter interface {
	io.WriteCloser
	LogLevel() Level
}

type leveledWriter struct {
	io.WriteCloser
	level Level
}

func (w leveledWriter) LogLevel() Level {
	return w.level
}

// NewBackend creates a logger backend using the flags set in LOGFLAGS.
func NewBackend() *Backend {
	return newBackendWithFlags(defaultFlags)
}

func newBackendWithFlags(flags uint32) *Backend {
	return &Backend{flag: flags, writeChan: make(chan logEntry)}
}

// AddLogWriter adds a writer receiving every message at logLevel or above.
// Writers can only be added before Run.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("The logger is already running")
	}
	b.writers = append(b.writers, leveledWriter{WriteCloser: writer, level: logLevel})
	return nil
}

// AddLogFile adds a rotating log file receiving every message at logLevel
// or above, creating the file and its directory as needed.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.addRotatingLogFile(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// addRotatingLogFile is AddLogFile with explicit rotation settings: the file
// is gzipped aside once it reaches thresholdKB, and at most maxRolls old
// files are kept.
func (b *Backend) addRotatingLogFile(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	if b.IsRunning() {
		return errors.New("The logger is already running")
	}
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	return b.AddLogWriter(r, logLevel)
}

// Run starts the goroutine writing the messages out. It may only be called
// once.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("The logger is already running")
	}
	go func() {
		defer func() {
			if err := recover(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Fatal error in logger.Backend goroutine: %+v\n", err)
				_, _ = fmt.Fprintf(os.Stderr, "Goroutine stacktrace: %s\n", debug.Stack())
			}
		}()
		b.runBlocking()
	}()
	return nil
}

func (b *Backend) runBlocking() {
	defer atomic.StoreUint32(&b.isRunning, 0)
	b.syncClose.Lock()
	defer b.syncClose.Unlock()

	for entry := range b.writeChan {
		for _, writer := range b.writers {
			if entry.level >= writer.LogLevel() {
				_, _ = writer.Write(entry.log)
			}
		}
	}
}

// IsRunning returns whether Run was called.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close waits for the pending messages to be written and closes all
// writers.
func (b *Backend) Close() {
	close(b.writeChan)
	b.syncClose.Lock()
	defer b.syncClose.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. A tag describes the subsystem and is included in all log
// messages. The logger is off until its level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{LevelOff, subsystemTag, b, b.writeChan}
}
