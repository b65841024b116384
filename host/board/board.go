package board

import (
	"errors"
	"fmt"
	"time"

	"rtctime/core"
	"rtctime/host/serial"
)

var ErrNotConnected = errors.New("board not connected")

// openPort opens the serial device; tests replace it
var openPort = serial.Open

// Board represents a serial connection to a clock board
type Board struct {
	port      serial.Port
	lines     *LineReader
	connected bool
}

// New creates a new Board instance (not yet connected)
func New() *Board {
	return &Board{
		connected: false,
	}
}

// Connect connects to a board via serial port
func (b *Board) Connect(device string) error {
	return b.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to a board with a custom serial config
func (b *Board) ConnectWithConfig(cfg *serial.Config) error {
	port, err := openPort(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}

	b.Attach(port)

	// Drop anything printed before we connected
	if err := port.Flush(); err != nil {
		b.Close()
		return fmt.Errorf("failed to flush serial port: %w", err)
	}

	// Give the board time to reset (if opening the port toggled DTR)
	time.Sleep(100 * time.Millisecond)

	return nil
}

// Attach uses an already opened port
func (b *Board) Attach(port serial.Port) {
	b.port = port
	b.lines = NewLineReader(port)
	b.connected = true
}

// Close closes the connection to the board
func (b *Board) Close() error {
	if !b.connected {
		return nil
	}
	b.connected = false
	return b.port.Close()
}

// IsConnected returns whether a port is attached
func (b *Board) IsConnected() bool {
	return b.connected
}

// NextReading blocks until the board prints a time or the port times out.
// A timeout is reported as io.EOF.
func (b *Board) NextReading() (core.TimeOfDay, error) {
	if !b.connected {
		return core.TimeOfDay{}, ErrNotConnected
	}
	return b.lines.Next()
}

// Sync asks the board to set its RTC to t
func (b *Board) Sync(t core.TimeOfDay) error {
	if !b.connected {
		return ErrNotConnected
	}
	if !t.InCanonicalRange() {
		return fmt.Errorf("cannot sync to %s: %w", t, core.ErrInvalidTime)
	}
	if err := WriteSync(b.port, t); err != nil {
		return fmt.Errorf("failed to send sync: %w", err)
	}
	return nil
}

// SkippedLines returns how many lines from the board were not readings
func (b *Board) SkippedLines() int {
	if b.lines == nil {
		return 0
	}
	return b.lines.Skipped()
}

// Drift returns how many seconds the board reading is ahead of the host (negative if behind).
// Readings either side of midnight are folded into +/-12h.
func Drift(host, reading core.TimeOfDay) int64 {
	const day, half = 86400, 43200
	d := int64(reading.Seconds()) - int64(host.Seconds())
	switch {
	case d > half:
		d -= day
	case d < -half:
		d += day
	}
	return d
}
