// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelscroll/main.go
// Summary: Terminal viewer that shows a file, command output or sample text in a scroll viewport.
// Usage: texelscroll [-file path | -exec "cmd args"] [-height n] [-no-track] [-state-key key]

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/defaults"
	"github.com/framegrace/texelscroll/internal/devshell"
	"github.com/framegrace/texelscroll/internal/statestore"
	"github.com/framegrace/texelscroll/texelui/adapter"
	"github.com/framegrace/texelscroll/texelui/scroll"
)

const appName = "texelscroll"

const helpText = `PgUp/PgDn  page
Up/Down    line
Ctrl-Home  top
Ctrl-End   bottom
wheel      scroll
drag thumb seek
click track page
Ctrl-C     quit

Scrolling this panel
marks the main view
as blurred.`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	file     string
	exec     string
	height   int
	noTrack  bool
	class    string
	stateKey string
	logPath  string
	printCfg bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.StringVar(&f.file, "file", "", "Show this file (source code is highlighted)")
	fs.StringVar(&f.exec, "exec", "", "Show the output of this shell command")
	fs.IntVar(&f.height, "height", 0, "Viewport height in rows (0 fills the terminal)")
	fs.BoolVar(&f.noTrack, "no-track", false, "Hide the scroll track; show edge indicators instead")
	fs.StringVar(&f.class, "class", "", "Extra class names for theme overrides")
	fs.StringVar(&f.stateKey, "state-key", "", "Persist the scroll offset under this key")
	fs.StringVar(&f.logPath, "log", "", "Append logs to this file (default: texelscroll.log in the config dir)")
	fs.BoolVar(&f.printCfg, "print-config", false, "Print the example configuration files and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if f.file != "" && f.exec != "" {
		return f, errors.New("-file and -exec are mutually exclusive")
	}
	if f.height < 0 {
		return f, fmt.Errorf("-height %d: must not be negative", f.height)
	}
	return f, nil
}

func run(args []string, stdout *os.File) error {
	f, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if f.printCfg {
		return printConfig(stdout)
	}
	if !term.IsTerminal(int(stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	closeLog, err := setupLog(f.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	sys := config.System()
	appCfg := config.App(appName)
	if err := config.Err(); err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	content, title, err := loadContent(f, appCfg, stdout)
	if err != nil {
		return err
	}

	opts := scroll.OptionsFromConfig(appCfg, scroll.Options{
		Height:    f.height,
		ClassName: f.class,
		StateKey:  f.stateKey,
	})
	if f.noTrack {
		opts.TrackVertical = scroll.Bool(false)
	}

	var store scroll.OffsetStore
	if f.stateKey != "" {
		s, err := statestore.OpenFromConfig(sys)
		if err != nil {
			log.Printf("statestore: %v (offsets will not persist)", err)
		} else if s != nil {
			defer s.Close()
			store = s
		}
	}

	app := adapter.NewViewportApp(adapter.ViewportAppConfig{
		Title:         title,
		Content:       content,
		Options:       opts,
		Timing:        scroll.TimingFromConfig(sys),
		FrameInterval: scroll.FrameIntervalFromConfig(sys),
		Store:         store,
		Help:          helpText,
	})
	err = devshell.RunApp(app)
	// Unmount so the offset is saved before the store closes.
	app.Close()
	return err
}

func printConfig(w io.Writer) error {
	sys, err := defaults.SystemConfig()
	if err != nil {
		return err
	}
	app, err := defaults.AppConfig(appName)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n# --- apps/%s/config.toml ---\n\n%s", sys, appName, app)
	return err
}

func setupLog(path string) (func(), error) {
	if path == "" {
		p, err := config.DataPath(appName + ".log")
		if err != nil {
			log.SetOutput(io.Discard)
			return func() {}, nil
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { file.Close() }, nil
}
