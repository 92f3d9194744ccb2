package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// lineReader reads whitespace-trimmed lines from the player.
// Lines of any length are returned whole; the validator rejects the bad ones.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// ReadLine blocks for the next line; io.EOF once input is exhausted.
// A final line without a trailing newline is still returned.
func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
