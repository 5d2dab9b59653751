package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/meatflavourdev/useEventListener/pointer"
)

type invalidArgErr struct {
	flags, desc string
}

func (i invalidArgErr) Error() string {
	return fmt.Sprintf("invalid flags %s  %s", i.flags, i.desc)
}

type options struct {
	logFile  string
	logLevel slog.Level
}

// newOptions: create and parse flags, returning an options struct with all values
func newOptions(args []string) (options, error) {
	fs := flag.NewFlagSet("pointer", flag.ContinueOnError)

	logFile := fs.String("log-file", "pointer.log", "file to write logs to; the terminal is owned by the display")
	logLevel := fs.String("log-level", "info", "one of debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	opts := options{}

	if *logFile == "" {
		return options{}, invalidArgErr{"-log-file", "field is required"}
	}
	opts.logFile = *logFile

	level, err := parseLevel(*logLevel)
	if err != nil {
		return options{}, invalidArgErr{"-log-level", err.Error()}
	}
	opts.logLevel = level

	return opts, nil
}

func parseLevel(input string) (slog.Level, error) {
	level, ok := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}[strings.ToLower(input)]

	if !ok {
		return 0, fmt.Errorf("%q not one of debug, info, warn, error", input)
	}
	return level, nil
}

// runDisplay: initializes the display and mounts the pointer view into its
// root container. Returns a `doneCh` which is closed once the display has
// been torn down, either by an interrupt key or by the returned stop func
func runDisplay(logger *slog.Logger) (chan struct{}, func(), error) {
	displayOpts := pointer.NewDefaultTerminalDisplayOptions()
	displayOpts.Logger = logger

	display := pointer.NewTerminalDisplay(displayOpts)
	if err := display.Init(); err != nil {
		return nil, nil, err
	}

	view := pointer.NewView(pointer.ViewOptions{Logger: logger})
	if err := display.Mount(pointer.RootContainer, view); err != nil {
		display.Close()
		return nil, nil, err
	}

	doneCh := make(chan struct{})
	var once sync.Once
	stop := func() {
		once.Do(func() {
			if err := display.Close(); err != nil {
				logger.Error("close display", "err", err)
			}
			close(doneCh)
		})
	}

	go func() {
		for err := range display.ErrCh() {
			if errors.As(err, &pointer.ErrDisplayInterrupt{}) {
				break
			}
			logger.Error("display", "err", err)
		}
		stop()
	}()

	return doneCh, stop, nil
}

// main: track the mouse pointer in the terminal and show its coordinates
// until esc, q or ctrl-c is pressed
func main() {
	opts, err := newOptions(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: opts.logLevel}))
	logger.Info("starting")

	doneCh, stopFn, err := runDisplay(logger)
	if err != nil {
		logger.Error("run display", "err", err)
		log.Fatal(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	select {
	case <-doneCh:
	case <-sigCh:
		logger.Info("signal received")
		stopFn()
	}
	logger.Info("stopped")
}
