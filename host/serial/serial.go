// Serial link to a clock board
package serial

import (
	"io"
)

// Port is the host end of the clock board's serial link.
// The board prints readings on it and accepts sync lines; tests
// substitute an in-memory port.
type Port interface {
	io.ReadWriteCloser

	// Flush discards input the board printed before we started listening
	Flush() error
}

// Config describes how to open the board's port
type Config struct {
	Device      string // e.g. "/dev/ttyUSB0" or "COM3"
	Baud        int    // ignored by USB CDC boards
	ReadTimeout int    // milliseconds; 0 blocks until data arrives
}

// DefaultConfig returns settings for a board printing once per second
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500, // a timeout surfaces as io.EOF between readings
	}
}
