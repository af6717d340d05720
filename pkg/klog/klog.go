package klog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var (
	mu      sync.Mutex
	output  io.Writer = os.Stderr
	logFile *os.File
	debug   = false
)

const prefixFmt string = "[%s]\t%s - %d %s "

// Config selects where log lines go. An empty Path logs to stderr.
type Config struct {
	Path  string
	Debug bool
}

// Init applies cfg, replacing any log file opened by a previous call.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	debug = cfg.Debug
	if cfg.Path == "" {
		closeFile()
		output = os.Stderr
		return nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", cfg.Path)
	}
	closeFile()
	logFile = f
	output = f
	return nil
}

// SetOutput redirects logging to w, mostly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

// Close releases the log file, if any, and falls back to stderr.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeFile()
	output = os.Stderr
	return err
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func logf(level string, f string, v []any) {
	funcName, file, line, _ := runtime.Caller(2)
	strBuilder := strings.Builder{}
	strBuilder.WriteString(prefixFmt)
	strBuilder.WriteString(f)
	var a = []any{level, file, line, runtime.FuncForPC(funcName).Name()}
	a = append(a, v...)

	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(output, strBuilder.String(), a...)
}

// Infof outputs log with level Info
func Infof(f string, v ...any) {
	logf("Info", f, v)
}

// Warnf outputs log with level Warn
func Warnf(f string, v ...any) {
	logf("Warn", f, v)
}

// Errorf outputs log with level Error
func Errorf(f string, v ...any) {
	logf("Error", f, v)
}

// Fatalf output log and the program exits with code 1
func Fatalf(f string, v ...any) {
	logf("Fatal", f, v)
	os.Exit(1)
}

/*
Debugf outputs log with level Debug.

Dropped unless debug is enabled through Init or SetDebug.
*/
func Debugf(f string, v ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if !enabled {
		return
	}
	logf("Debug", f, v)
}
