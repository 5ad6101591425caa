// Package logutil provides prefixed loggers that share one output.
package logutil

import (
	"io"
	"log"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	loggers []*log.Logger
)

// GetLogger returns a logger with the given prefix. It writes to the output
// set by SetOutput, which is io.Discard until set.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := log.New(out, prefix, log.Lmicroseconds)
	loggers = append(loggers, l)
	return l
}

// SetOutput redirects all loggers, including those already created.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
