// Package log provides the leveled logger used across the emulator core.
package log

import (
	"fmt"
	"io"
	"os"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	out io.Writer
}

// New returns a Logger that writes to stdout.
func New() Logger {
	return &logger{out: os.Stdout}
}

// NewWithWriter returns a Logger that writes to w.
func NewWithWriter(w io.Writer) Logger {
	return &logger{out: w}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[INFO]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[ERROR]\t"+format+"\n", args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "[DEBUG]\t"+format+"\n", args...)
}
