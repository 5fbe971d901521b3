package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"tracker2nuke/internal/fileutil"
)

// ErrUnavailable indicates no system clipboard provider could be used.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Sink receives a rendered script.
type Sink interface {
	Write(text string) error
	// Describe names the destination for user-facing reports.
	Describe() string
}

// Source yields text previously placed on the clipboard or in a file.
type Source interface {
	Read() (string, error)
	Describe() string
}

// System targets the operating system clipboard.
type System struct{}

// NewSystem returns a sink backed by the OS clipboard.
func NewSystem() System { return System{} }

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

func (System) Describe() string { return "clipboard" }

// File writes scripts atomically to a path and reads them back.
type File struct {
	Path string
}

func (f File) Write(text string) error {
	if strings.TrimSpace(f.Path) == "" {
		return errors.New("file sink: empty path")
	}
	if err := fileutil.WriteFileAtomic(f.Path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

func (f File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", f.Path, err)
	}
	return string(data), nil
}

func (f File) Describe() string { return f.Path }

// Stream writes to or reads from an io stream such as stdout or stdin.
type Stream struct {
	W    io.Writer
	R    io.Reader
	Name string
}

func (s Stream) Write(text string) error {
	if s.W == nil {
		return errors.New("stream sink: no writer")
	}
	_, err := io.WriteString(s.W, text)
	return err
}

func (s Stream) Read() (string, error) {
	if s.R == nil {
		return "", errors.New("stream source: no reader")
	}
	data, err := io.ReadAll(s.R)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", s.Describe(), err)
	}
	return string(data), nil
}

func (s Stream) Describe() string {
	if s.Name == "" {
		return "stream"
	}
	return s.Name
}

// Target selects a sink. An output path wins, then the clipboard when
// requested, then stdout.
func Target(outputPath string, useClipboard bool, stdout io.Writer) Sink {
	switch {
	case outputPath == "-":
		return Stream{W: stdout, Name: "stdout"}
	case strings.TrimSpace(outputPath) != "":
		return File{Path: outputPath}
	case useClipboard:
		return System{}
	default:
		return Stream{W: stdout, Name: "stdout"}
	}
}

// Origin selects a source for pasted text: "-" is stdin, any other non-empty
// value is a file, and empty reads the system clipboard.
func Origin(from string, stdin io.Reader) Source {
	switch {
	case from == "-":
		return Stream{R: stdin, Name: "stdin"}
	case strings.TrimSpace(from) != "":
		return File{Path: from}
	default:
		return System{}
	}
}
