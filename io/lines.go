package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const maxLineBytes = 1 << 20

// NoSuchFileError reports a missing input file.
type NoSuchFileError struct {
	Path string
	Err  error
}

func (e *NoSuchFileError) Error() string {
	return fmt.Sprintf("no such file: %q", e.Path)
}

func (e *NoSuchFileError) Unwrap() error { return e.Err }

// MeaningfulLineCount counts the lines of a text file that are neither blank
// nor comments (starting with '#' after trimming whitespace).
func MeaningfulLineCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, &NoSuchFileError{Path: path, Err: err}
		}
		return 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	n, err := CountMeaningfulLines(f)
	if err != nil {
		return 0, fmt.Errorf("read %q: %w", path, err)
	}
	return n, nil
}

func CountMeaningfulLines(r io.Reader) (int, error) {
	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan lines: %w", err)
	}
	return count, nil
}
