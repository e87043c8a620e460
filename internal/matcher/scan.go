package matcher

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineBytes      = 4 * 1024 * 1024
)

// ProgressFunc receives the number of bytes consumed by each line.
type ProgressFunc func(n int)

// Lines yields the lines of r without their terminators. Read errors stop the
// sequence and are reported through the returned func once iteration ends.
func Lines(r io.Reader, progress ProgressFunc) (iter.Seq[string], func() error) {
	var scanErr error
	seq := func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineBytes)
		if progress != nil {
			scanner.Split(countingLines(progress))
		}
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		scanErr = scanner.Err()
	}
	return seq, func() error { return scanErr }
}

// countingLines splits like bufio.ScanLines and reports the raw bytes each
// line consumed, terminators included.
func countingLines(progress ProgressFunc) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance > 0 {
			progress(advance)
		}
		return advance, token, err
	}
}

// Scan reads r line by line and returns the exact anagrams of the matcher's
// target. Memory is bounded by one line plus the accumulating result.
func (m *Matcher) Scan(r io.Reader, progress ProgressFunc) (Set, error) {
	lines, errFn := Lines(r, progress)
	result := m.Find(lines)
	if err := errFn(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return result, nil
}
