package board

import (
	"bufio"
	"io"
	"strings"

	"rtctime/core"
	"rtctime/protocol"
)

// LineReader pulls clock readings out of the board's text output.
// The board prints one "HH:MM:SS" line per reading; any other line,
// such as debug output, is counted and skipped.
type LineReader struct {
	r       *bufio.Reader
	partial string
	skipped int
}

// NewLineReader wraps r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next reading.
// A read timeout surfaces as io.EOF; any partial line is kept, so the
// caller can call Next again once more data arrives.
func (l *LineReader) Next() (core.TimeOfDay, error) {
	for {
		chunk, err := l.r.ReadString('\n')
		l.partial += chunk
		if err != nil {
			return core.TimeOfDay{}, err
		}

		line := strings.TrimSpace(l.partial)
		l.partial = ""
		if line == "" {
			continue
		}

		tod, ok := protocol.ParseReading(line)
		if !ok {
			l.skipped++
			continue
		}
		return tod, nil
	}
}

// Skipped returns how many non-empty lines did not parse as a time
func (l *LineReader) Skipped() int {
	return l.skipped
}

// WriteSync sends a sync request line
func WriteSync(w io.Writer, t core.TimeOfDay) error {
	_, err := io.WriteString(w, protocol.FormatSync(t))
	return err
}
