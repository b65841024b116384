package rtc

import (
	"sync"
	"time"

	"rtctime/core"
)

// Years the RTC date registers can hold (two BCD digits past 2000)
const (
	minYear = 2000
	maxYear = 2099
)

// Reader turns an RTC into a source of core.TimeOfDay values.
// It is safe for use from multiple goroutines.
type Reader struct {
	mu    sync.Mutex
	clock Clock
}

// NewReader wraps clock
func NewReader(clock Clock) *Reader {
	return &Reader{clock: clock}
}

// Now reads the current time of day from the RTC
func (r *Reader) Now() (core.TimeOfDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.clock.ReadTime()
	if err != nil {
		core.RecordClockEvent(core.EvtReadError, core.TimeOfDay{})
		core.DebugPrintln("rtc: read failed: " + err.Error())
		return core.TimeOfDay{}, &Error{Op: "read time", Err: err}
	}

	tod := core.FromReading(t)
	core.RecordClockEvent(core.EvtRead, tod)
	return tod, nil
}

// Sync sets the RTC's hour, minute and second to tod while keeping
// the date the chip already holds, or 2000-01-01 if that date is invalid.
// The chip only stores canonical values, so anything past 23:59:59 is rejected.
func (r *Reader) Sync(tod core.TimeOfDay) error {
	if !tod.InCanonicalRange() {
		return &Error{Op: "sync " + tod.Format(true), Err: ErrNotCanonical}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.clock.ReadTime()
	if err != nil {
		core.RecordClockEvent(core.EvtSyncError, tod)
		return &Error{Op: "read date", Err: err}
	}

	// A chip that was never set holds zeroed or random date registers,
	// which normalize outside the 2000-2099 range the drivers can store
	year, month, day := current.Date()
	if year < minYear || year > maxYear {
		core.DebugPrintln("rtc: stored date invalid, resetting to 2000-01-01")
		year, month, day = minYear, time.January, 1
	}

	updated := time.Date(year, month, day,
		int(tod.Hour()), int(tod.Minute()), int(tod.Second()), 0, time.UTC)
	if err := r.clock.SetTime(updated); err != nil {
		core.RecordClockEvent(core.EvtSyncError, tod)
		core.DebugPrintln("rtc: sync failed: " + err.Error())
		return &Error{Op: "set time", Err: err}
	}

	core.RecordClockEvent(core.EvtSync, tod)
	core.DebugPrintln("rtc: synced to " + tod.Format(true))
	return nil
}
