package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"rtctime/core"
	"rtctime/host/board"
	"rtctime/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	timeout = flag.Int("timeout", 500, "Read timeout in milliseconds")
	doSync  = flag.Bool("sync", false, "Set the board clock to the host time before reading")
	count   = flag.Int("count", 0, "Stop after this many readings (0 = run until interrupted)")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *timeout

	clockBoard := board.New()

	fmt.Printf("Connecting to board on %s...\n", *device)
	if err := clockBoard.ConnectWithConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer clockBoard.Close()

	if *doSync {
		now := core.FromReading(time.Now())
		if err := clockBoard.Sync(now); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Sent sync to %s\n", now.Format(true))
	}

	if err := monitor(clockBoard, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// monitor prints each board reading next to its drift from the host clock
func monitor(clockBoard *board.Board, limit int) error {
	for n := 0; limit == 0 || n < limit; {
		reading, err := clockBoard.NextReading()
		if errors.Is(err, io.EOF) {
			// Read timeout, board has not printed yet
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read board: %w", err)
		}
		n++

		host := core.FromReading(time.Now())
		fmt.Printf("board %s  host %s  drift %+ds\n",
			reading.Format(true), host.Format(true), board.Drift(host, reading))

		if *verbose && !reading.InCanonicalRange() {
			fmt.Printf("  warning: %s is outside 00:00:00-23:59:59\n", reading)
		}
	}

	if *verbose {
		fmt.Printf("Skipped %d non-time lines\n", clockBoard.SkippedLines())
	}
	return nil
}
