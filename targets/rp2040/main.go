//go:build rp2040 || rp2350

package main

import (
	"time"

	"rtctime/core"
	"rtctime/protocol"
	"rtctime/rtc"
)

const (
	rtcI2CBus  = 0      // I2C0: SDA=GP4, SCL=GP5
	rtcI2CFreq = 100000 // DS1307 tops out at 100kHz
	rtcChip    = rtc.ChipDS3231

	pollInterval = 50 * time.Millisecond

	// Dump the clock ring after this many consecutive read failures
	dumpAfterErrors = 20

	// Print rtc read/sync diagnostics on USB
	debugOutput = true
)

var (
	reader  *rtc.Reader
	lineBuf protocol.LineBuffer

	// Consecutive RTC read failures
	readErrors uint32
)

func main() {
	InitUSB()
	core.SetDebugWriter(func(s string) {
		USBWriteString(s + "\n")
	})
	core.SetDebugEnabled(debugOutput)

	core.SetI2CDriver(NewRPI2CDriver())

	bus, err := rtc.NewBusAdapter(core.MustI2C(), rtcI2CBus, rtcI2CFreq)
	if err != nil {
		halt(err)
	}
	clock, err := rtc.NewClock(rtcChip, bus)
	if err != nil {
		halt(err)
	}
	reader = rtc.NewReader(clock)

	var last core.TimeOfDay
	haveLast := false

	for {
		pollUSB()

		now, err := reader.Now()
		if err != nil {
			readErrors++
			if readErrors%dumpAfterErrors == 0 {
				core.DumpClockRing()
			}
		} else {
			readErrors = 0
			// Print once per second, when the reading changes
			if !haveLast || now.NotEqual(last) {
				USBWriteString(protocol.FormatReading(now))
				last = now
				haveLast = true
			}
		}

		time.Sleep(pollInterval)
	}
}

// pollUSB drains host input and applies any sync request
func pollUSB() {
	for USBAvailable() > 0 {
		b, err := USBRead()
		if err != nil {
			return
		}
		line, ok := lineBuf.Push(b)
		if !ok {
			continue
		}
		tod, ok := protocol.ParseSync(line)
		if !ok {
			core.DebugPrintln("ignored line: " + line)
			continue
		}
		if err := reader.Sync(tod); err != nil {
			USBWriteString("sync failed: " + err.Error() + "\n")
		}
	}
}

// halt reports a fatal setup error forever so a host can still see it
func halt(err error) {
	for {
		USBWriteString("rtc init failed: " + err.Error() + "\n")
		time.Sleep(time.Second)
	}
}
