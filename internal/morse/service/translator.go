// ============================================================================
// morsetree - Morse code over binary code trees
// ============================================================================
//
// Package:     service
// Description: Line-by-line translation of an input stream
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package service

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/msto63/morsetree/internal/morse/codec"
	"github.com/msto63/morsetree/internal/morse/tree"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
	"github.com/msto63/morsetree/pkg/core/logging"
)

// Mode selects the translation direction
type Mode int

const (
	ModeEncode Mode = iota
	ModeDecode
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Config holds translator configuration
type Config struct {
	Mode   Mode
	Tree   *tree.Node
	Logger *logging.Logger
}

// Stats summarizes a Run
type Stats struct {
	Lines int
	Bytes int
}

// Translator turns input lines into output lines, one for one
type Translator struct {
	mode   Mode
	root   *tree.Node
	logger *logging.Logger
}

// NewTranslator creates a translator; a nil tree selects the built-in tree
func NewTranslator(cfg Config) (*Translator, error) {
	if cfg.Mode != ModeEncode && cfg.Mode != ModeDecode {
		return nil, coreerr.Newf(coreerr.CodeUsage, "unknown mode %d", cfg.Mode)
	}

	root := cfg.Tree
	if root == nil {
		root = tree.Default()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Translator{
		mode:   cfg.Mode,
		root:   root,
		logger: logger.WithField("mode", cfg.Mode.String()),
	}, nil
}

// Mode returns the translation direction
func (t *Translator) Mode() Mode {
	return t.mode
}

// Translate converts a single line
func (t *Translator) Translate(line string) string {
	if t.mode == ModeDecode {
		return codec.Decode(line, t.root)
	}
	return codec.Encode(line, t.root)
}

// Run reads in line by line and writes one translated line per input line
// to out. Lines have no length limit. Run returns ctx.Err() as soon as ctx
// is cancelled, also while it is waiting for input.
func (t *Translator) Run(ctx context.Context, in io.Reader, out io.Writer) (Stats, error) {
	var stats Stats

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		var r readResult
		var ok bool
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case r, ok = <-lines:
		}
		if !ok {
			break
		}
		if r.err != nil {
			return stats, coreerr.Wrap(r.err, "failed to read input").WithCode(coreerr.CodeIO)
		}

		line := strings.TrimRight(r.line, "\r\n")
		result := t.Translate(line)

		if _, err := io.WriteString(out, result+"\n"); err != nil {
			return stats, coreerr.Wrap(err, "failed to write output").WithCode(coreerr.CodeIO)
		}

		stats.Lines++
		stats.Bytes += len(line)
		t.logger.Trace("Translated line", "line", stats.Lines, "in", len(line), "out", len(result))
	}

	t.logger.Debug("Input finished", "lines", stats.Lines, "bytes", stats.Bytes)
	return stats, nil
}

// readResult is one line, or the error that ended reading
type readResult struct {
	line string
	err  error
}

// readLines reads in on its own goroutine so a blocked read cannot delay
// cancellation. The channel is closed at end of input; the goroutine exits
// early once done is closed.
func readLines(in io.Reader, done <-chan struct{}) <-chan readResult {
	lines := make(chan readResult)

	go func() {
		defer close(lines)

		reader := bufio.NewReader(in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- readResult{line: line}:
				case <-done:
					return
				}
			}
			if err != nil {
				if err != io.EOF {
					select {
					case lines <- readResult{err: err}:
					case <-done:
					}
				}
				return
			}
		}
	}()

	return lines
}
