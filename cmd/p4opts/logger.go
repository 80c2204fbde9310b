package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/danbrakeley/frog"
)

// Logger is the logging interface used by p4opts, so that commands don't depend on
// the underlying logging library.
type Logger interface {
	// P4 returns a logger for lines written by p4 itself.
	P4() Logger

	Info(format string, args ...interface{})
	Verbose(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Error(format string, args ...interface{})

	InfoFast(msg string)
	VerboseFast(msg string)
	WarningFast(msg string)
	ErrorFast(msg string)
}

type FrogLog struct {
	Logger  frog.Logger
	Prefix  string
	Palette frog.Palette
}

func MakeLogger(l frog.RootLogger, verbose bool) (log Logger, close func()) {
	if verbose {
		l.SetMinLevel(frog.Verbose)
	} else {
		l.SetMinLevel(frog.Info)
	}
	log = &FrogLog{
		Logger: l,
		Prefix: "",
		Palette: frog.Palette{
			{frog.DarkGray, frog.DarkGray}, // Transient
			{frog.Cyan, frog.DarkGray},     // Verbose
			{frog.White, frog.DarkGray},    // Info
			{frog.Yellow, frog.DarkGray},   // Warning
			{frog.Red, frog.DarkGray},      // Error
		},
	}
	close = func() { l.Close() }
	return log, close
}

func (l *FrogLog) P4() Logger {
	return &FrogLog{
		Logger: l.Logger,
		Prefix: "  p4> ",
		Palette: frog.Palette{
			{frog.DarkGray, frog.DarkGreen},  // Transient
			{frog.DarkGreen, frog.DarkGreen}, // Verbose
			{frog.Green, frog.DarkGreen},     // Info
			{frog.Yellow, frog.DarkGreen},    // Warning
			{frog.Red, frog.DarkGreen},       // Error
		},
	}
}

func (l *FrogLog) logImpl(level frog.Level, format string, args ...interface{}) {
	l.logImplFast(level, fmt.Sprintf(format, args...))
}

func (l *FrogLog) logImplFast(level frog.Level, msg string) {
	l.Logger.LogImpl(
		level,
		l.Prefix+msg,
		nil,
		[]frog.PrinterOption{frog.POPalette(l.Palette)},
		frog.ImplData{},
	)
}

func (l *FrogLog) Info(format string, args ...interface{}) {
	l.logImpl(frog.Info, format, args...)
}
func (l *FrogLog) Verbose(format string, args ...interface{}) {
	l.logImpl(frog.Verbose, format, args...)
}
func (l *FrogLog) Warning(format string, args ...interface{}) {
	l.logImpl(frog.Warning, format, args...)
}
func (l *FrogLog) Error(format string, args ...interface{}) {
	l.logImpl(frog.Error, format, args...)
}

func (l *FrogLog) InfoFast(msg string) {
	l.logImplFast(frog.Info, msg)
}
func (l *FrogLog) VerboseFast(msg string) {
	l.logImplFast(frog.Verbose, msg)
}
func (l *FrogLog) WarningFast(msg string) {
	l.logImplFast(frog.Warning, msg)
}
func (l *FrogLog) ErrorFast(msg string) {
	l.logImplFast(frog.Error, msg)
}

// LogWriter creates an io.Writer that sends each written line to fn. Close the
// writer to stop the goroutine that reads it; done is closed once every line has
// been logged.
func LogWriter(fn func(string)) (w io.WriteCloser, done <-chan struct{}) {
	r, pw := io.Pipe()
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		s := bufio.NewScanner(r)
		for s.Scan() {
			fn(s.Text())
		}
		// keep draining after a scan error, so writers never block
		io.Copy(io.Discard, r)
	}()
	return pw, ch
}
