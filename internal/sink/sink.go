// Package sink serializes records as comma-space delimited text to standard
// output or to a file. Fields are never quoted: colorsWorn contains the
// separator and is emitted as-is on both destinations.
package sink

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zarlcorp/bearstats/internal/record"
	"github.com/zarlcorp/core/pkg/zfilesystem"
)

const (
	separator = ", "
	newline   = "\n"

	filePerm = 0o644
)

// ErrIO is returned when the destination cannot be opened or written.
var ErrIO = errors.New("io failure")

var errIsDir = errors.New("is a directory")

// Sink is a destination for a header and its rows.
type Sink struct {
	w    io.Writer
	fsys zfilesystem.ReadWriteFileFS
	name string
	path string
}

// Stdout returns a sink writing to w.
func Stdout(w io.Writer) *Sink {
	return &Sink{w: w}
}

// File returns a sink that creates or truncates name on fsys.
func File(fsys zfilesystem.ReadWriteFileFS, name string) *Sink {
	return &Sink{fsys: fsys, name: name}
}

// ForPath returns a stdout sink for an empty path, otherwise a file sink
// rooted at the directory containing path.
func ForPath(path string, stdout io.Writer) *Sink {
	if path == "" {
		return Stdout(stdout)
	}
	fsys := zfilesystem.NewOSFileSystem(filepath.Dir(path))
	s := File(fsys, filepath.Base(path))
	s.path = path
	return s
}

// IsFile reports whether the sink writes to a file.
func (s *Sink) IsFile() bool {
	return s.fsys != nil
}

// String names the destination.
func (s *Sink) String() string {
	switch {
	case s.path != "":
		return s.path
	case s.IsFile():
		return s.name
	}
	return "stdout"
}

// Emit writes header and rows to the destination. A failed write leaves
// whatever reached the destination in place.
func (s *Sink) Emit(header []string, rows []record.Record) error {
	if !s.IsFile() {
		bw := bufio.NewWriter(s.w)
		if err := Encode(bw, header, rows); err != nil {
			return fmt.Errorf("%w: write stdout: %w", ErrIO, err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("%w: write stdout: %w", ErrIO, err)
		}
		return nil
	}

	if err := s.checkTarget(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, s, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, header, rows); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrIO, s.name, err)
	}
	if err := s.fsys.WriteFile(s.name, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, s.name, err)
	}
	return nil
}

// checkTarget rejects a path naming a directory, with or without a trailing
// separator.
func (s *Sink) checkTarget() error {
	if s.path == "" {
		return nil
	}
	if strings.HasSuffix(s.path, "/") || strings.HasSuffix(s.path, string(filepath.Separator)) {
		return errIsDir
	}
	if info, err := os.Stat(filepath.Clean(s.path)); err == nil && info.IsDir() {
		return errIsDir
	}
	return nil
}

// Encode writes the header line followed by one line per row.
func Encode(w io.Writer, header []string, rows []record.Record) error {
	if err := writeLine(w, header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeLine(w, r.Values()); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, fields []string) error {
	_, err := io.WriteString(w, strings.Join(fields, separator)+newline)
	return err
}
