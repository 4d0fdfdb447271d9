package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/msto63/morsetree/internal/morse/tree"
	coreerr "github.com/msto63/morsetree/pkg/core/errors"
)

func newTranslator(t *testing.T, mode Mode) *Translator {
	t.Helper()
	tr, err := NewTranslator(Config{Mode: mode})
	if err != nil {
		t.Fatalf("NewTranslator() error = %v", err)
	}
	return tr
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeEncode, "encode"},
		{ModeDecode, "decode"},
		{Mode(7), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.expected {
				t.Errorf("Mode.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewTranslator_InvalidMode(t *testing.T) {
	_, err := NewTranslator(Config{Mode: Mode(7)})
	if !coreerr.HasCode(err, coreerr.CodeUsage) {
		t.Errorf("NewTranslator() error = %v, want USAGE", err)
	}
}

func TestTranslator_Run(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		input string
		want  string
	}{
		{"encode single word", ModeEncode, "HELLO", ".... . .-.. .-.. ---\n"},
		{"decode single word", ModeDecode, ".... . .-.. .-.. ---", "HELLO\n"},
		{"encode two words", ModeEncode, "HELLO WORLD\n", ".... . .-.. .-.. ---  .-- --- .-. .-.. -..\n"},
		{"decode two words", ModeDecode, ".... . .-.. .-.. ---  .-- --- .-. .-.. -..\n", "HELLO WORLD\n"},
		{"encode collapses spaces", ModeEncode, "HELLO   WORLD", ".... . .-.. .-.. ---  .-- --- .-. .-.. -..\n"},
		{"decode wide gap", ModeDecode, ".... . .-.. .-.. ---    .-- --- .-. .-.. -..", "HELLO WORLD\n"},
		{"encode empty line", ModeEncode, "\n", "\n"},
		{"decode empty line", ModeDecode, "\n", "\n"},
		{"no input at all", ModeEncode, "", ""},
		{"crlf line endings", ModeDecode, "... --- ...\r\n.-\r\n", "SOS\nA\n"},
		{"one output line per input line", ModeEncode, "E\n\nT\n", ".\n\n-\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTranslator(t, tt.mode)

			var out bytes.Buffer
			stats, err := tr.Run(context.Background(), strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if out.String() != tt.want {
				t.Errorf("Run() output = %q, want %q", out.String(), tt.want)
			}
			if wantLines := strings.Count(tt.want, "\n"); stats.Lines != wantLines {
				t.Errorf("Stats.Lines = %d, want %d", stats.Lines, wantLines)
			}
		})
	}
}

func TestTranslator_RunCancelled(t *testing.T) {
	tr := newTranslator(t, ModeEncode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := tr.Run(ctx, strings.NewReader("SOS\n"), &out)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("Run() wrote %q after cancellation", out.String())
	}
}

func TestTranslator_RunLongLine(t *testing.T) {
	tr := newTranslator(t, ModeEncode)

	long := strings.Repeat("E", 2<<20)
	var out bytes.Buffer
	stats, err := tr.Run(context.Background(), strings.NewReader(long+"\nT\n"), &out)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Lines != 2 {
		t.Errorf("Stats.Lines = %d, want 2", stats.Lines)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Run() wrote %d lines, want 2", len(lines))
	}
	if want := len(long)*2 - 1; len(lines[0]) != want {
		t.Errorf("first line length = %d, want %d", len(lines[0]), want)
	}
	if lines[1] != "-" {
		t.Errorf("second line = %q, want %q", lines[1], "-")
	}
}

func TestTranslator_RunStopsWhileWaitingForInput(t *testing.T) {
	tr := newTranslator(t, ModeEncode)

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, err := tr.Run(ctx, pr, io.Discard)
		errCh <- err
	}()

	if _, err := io.WriteString(pw, "E\n"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() still blocked 2s after cancellation")
	}
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestTranslator_RunReadError(t *testing.T) {
	tr := newTranslator(t, ModeEncode)

	_, err := tr.Run(context.Background(), failingReader{}, io.Discard)
	if !coreerr.HasCode(err, coreerr.CodeIO) {
		t.Errorf("Run() error = %v, want IO_ERROR", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTranslator_RunWriteError(t *testing.T) {
	tr := newTranslator(t, ModeEncode)

	_, err := tr.Run(context.Background(), strings.NewReader("SOS\n"), failingWriter{})
	if !coreerr.HasCode(err, coreerr.CodeIO) {
		t.Errorf("Run() error = %v, want IO_ERROR", err)
	}
}

func TestTranslator_Mode(t *testing.T) {
	if got := newTranslator(t, ModeDecode).Mode(); got != ModeDecode {
		t.Errorf("Mode() = %v, want %v", got, ModeDecode)
	}
}

func TestTranslator_CustomTree(t *testing.T) {
	root := tree.MustParse("(E * T)")
	tr, err := NewTranslator(Config{Mode: ModeEncode, Tree: root})
	if err != nil {
		t.Fatal(err)
	}

	if got := tr.Translate("TEA"); got != "- ." {
		t.Errorf("Translate() = %q, want %q", got, "- .")
	}
}
