package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
)

var errInvalidSalary = errors.New("salary must be a number greater than 0")

type lineResult struct {
	text string
	err  error
}

// lineReader scans input on its own goroutine so a blocked read can be
// abandoned when the session context is cancelled.
type lineReader struct {
	scanner *bufio.Scanner
	lines   chan lineResult
	once    sync.Once
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(r), lines: make(chan lineResult)}
}

func (l *lineReader) scan() {
	defer close(l.lines)
	for l.scanner.Scan() {
		l.lines <- lineResult{text: strings.TrimRight(l.scanner.Text(), "\r")}
	}
	if err := l.scanner.Err(); err != nil {
		l.lines <- lineResult{err: err}
	}
}

// readLine returns the next line without its terminator, io.EOF once input is
// exhausted, or ctx.Err() if ctx ends first.
func (l *lineReader) readLine(ctx context.Context) (string, error) {
	l.once.Do(func() { go l.scan() })
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.text, res.err
	}
}

func parseSalary(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errInvalidSalary
	}
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errInvalidSalary
	}
	return value, nil
}
