// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/ptysource/capture.go
// Summary: Runs a command on a pseudo-terminal and collects its output as plain text.

package ptysource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/framegrace/texelscroll/config"
)

// Options bounds a capture.
type Options struct {
	Cols, Rows int
	// Timeout kills the command once elapsed. Zero means no deadline.
	Timeout time.Duration
	// MaxBytes caps the raw output kept. Zero means unlimited.
	MaxBytes int
	Env      []string
}

// DefaultOptions match the "exec" config section defaults.
func DefaultOptions() Options {
	return Options{Cols: 80, Rows: 24, Timeout: 10 * time.Second, MaxBytes: 4 << 20}
}

// OptionsFromConfig reads the "exec" section of an app config.
func OptionsFromConfig(cfg config.Config) Options {
	o := DefaultOptions()
	o.Timeout = cfg.GetDuration("exec", "timeout_ms", o.Timeout)
	o.MaxBytes = cfg.GetInt("exec", "max_bytes", o.MaxBytes)
	return o
}

// TerminalSize reports the size of the terminal on f, falling back to 80x24.
func TerminalSize(f *os.File) (cols, rows int) {
	if f != nil && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return 80, 24
}

// Result is the cleaned output of a finished command.
type Result struct {
	Text string
	// Truncated reports that output beyond MaxBytes was discarded.
	Truncated bool
	// TimedOut reports that the deadline killed the command.
	TimedOut bool
	// ExitErr is the command's exit status error, if any.
	ExitErr error
}

// Capture runs name with args on a pty and waits for it to exit. A failing
// command still yields its output; only start failures return an error.
func Capture(ctx context.Context, name string, args []string, opts Options) (Result, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		opts.Cols, opts.Rows = 80, 24
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(),
		"TERM=dumb",
		fmt.Sprintf("COLUMNS=%d", opts.Cols),
		fmt.Sprintf("LINES=%d", opts.Rows),
	)
	cmd.Env = append(cmd.Env, opts.Env...)
	// pty.Start makes the child a session leader, so its pid names the
	// whole process group.
	cmd.Cancel = func() error { return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL) }

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(opts.Rows),
		Cols: uint16(opts.Cols),
	})
	if err != nil {
		return Result{}, fmt.Errorf("start pty: %w", err)
	}
	defer ptmx.Close()

	// Background children may hold the pty open past the deadline; closing
	// the master unblocks the reader.
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			ptmx.Close()
		case <-finished:
		}
	}()

	raw, truncated := readCapped(ptmx, opts.MaxBytes)
	waitErr := cmd.Wait()

	res := Result{Text: Clean(raw), Truncated: truncated}
	if ctx.Err() != nil {
		res.TimedOut = errors.Is(ctx.Err(), context.DeadlineExceeded)
		log.Printf("[PTYSOURCE] %s stopped: %v", name, ctx.Err())
	}
	if waitErr != nil {
		res.ExitErr = waitErr
	}
	return res, nil
}

// readCapped drains r until EOF or EIO (the pty's end of stream), keeping at
// most limit bytes when limit is positive.
func readCapped(r io.Reader, limit int) ([]byte, bool) {
	var out []byte
	truncated := false
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if limit > 0 && len(out)+n > limit {
				chunk = chunk[:max(limit-len(out), 0)]
				truncated = true
			}
			out = append(out, chunk...)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EIO) && !errors.Is(err, os.ErrClosed) {
				log.Printf("[PTYSOURCE] read: %v", err)
			}
			return out, truncated
		}
	}
}
