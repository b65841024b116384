// Text line protocol between a clock board and the host
//
// Board to host: one reading per line, "HH:MM:SS\n".
// Host to board: "sync HH:MM:SS\n" sets the RTC time of day.
// Any other line is ignored by the receiver.
package protocol

import (
	"strings"

	"rtctime/core"
)

// SyncPrefix starts a sync request line
const SyncPrefix = "sync "

// LineMax bounds a buffered line; longer input is discarded
const LineMax = 32

// FormatReading renders a reading line
func FormatReading(t core.TimeOfDay) string {
	return t.Format(true) + "\n"
}

// FormatSync renders a sync request line
func FormatSync(t core.TimeOfDay) string {
	return SyncPrefix + t.Format(true) + "\n"
}

// ParseReading parses a reading line, ignoring surrounding whitespace
func ParseReading(line string) (core.TimeOfDay, bool) {
	t, err := core.Parse(strings.TrimSpace(line))
	if err != nil {
		return core.TimeOfDay{}, false
	}
	return t, true
}

// ParseSync parses a sync request line
func ParseSync(line string) (core.TimeOfDay, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, SyncPrefix) {
		return core.TimeOfDay{}, false
	}
	return ParseReading(strings.TrimPrefix(line, SyncPrefix))
}

// LineBuffer accumulates bytes from a serial port into lines
// without allocating per byte
type LineBuffer struct {
	buf      [LineMax]byte
	pos      int
	overflow bool
}

// Push adds one byte and returns the completed line when b is '\n'.
// A line that outgrew the buffer is dropped whole.
func (l *LineBuffer) Push(b byte) (string, bool) {
	if b == '\n' {
		line := string(l.buf[:l.pos])
		dropped := l.overflow
		l.Reset()
		if dropped {
			return "", false
		}
		return line, true
	}
	if l.pos == len(l.buf) {
		l.overflow = true
		return "", false
	}
	l.buf[l.pos] = b
	l.pos++
	return "", false
}

// Available returns the number of buffered bytes
func (l *LineBuffer) Available() int {
	return l.pos
}

// Reset discards any partial line
func (l *LineBuffer) Reset() {
	l.pos = 0
	l.overflow = false
}
