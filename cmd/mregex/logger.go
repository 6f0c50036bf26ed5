package main

import (
	"fmt"
	"io"
	"os"
)

// logger is a minimal writer gated by a single verbosity flag; it has no
// log levels.
type logger struct {
	enabled bool
	out     io.Writer
}

func newLogger(enabled bool) *logger {
	return &logger{enabled: enabled, out: os.Stderr}
}

func (l *logger) Log(format string, args ...interface{}) {
	if l.enabled {
		fmt.Fprintf(l.out, "[mregex] "+format+"\n", args...)
	}
}

func (l *logger) Section(name string) {
	if l.enabled {
		fmt.Fprintf(l.out, "\n[mregex] === %s ===\n", name)
	}
}
