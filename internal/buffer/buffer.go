// Package buffer snapshots file content into ordered line slices and
// watches files for changes so the viewer can reparse on every write.
package buffer

import (
	"os"
	"strings"
)

// Snapshot reads the file at path into an ordered, zero-based slice of
// lines. The slice is a fresh copy on every call; callers may hold it
// across later writes to the file.
func Snapshot(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// SplitLines splits content on newlines, dropping the empty tail produced
// by a trailing newline and stripping CR from CRLF endings.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if content[len(content)-1] == '\n' {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
