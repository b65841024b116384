package core

import "sync"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// ClockEvent captures an RTC access for post-mortem analysis
type ClockEvent struct {
	EventType uint8     // Event type code
	Time      TimeOfDay // Time read from or written to the clock
}

// Event type codes
const (
	EvtRead      = 1 // Time read from the RTC
	EvtSync      = 2 // Time written to the RTC
	EvtReadError = 3 // RTC read failed
	EvtSyncError = 4 // RTC write failed
)

const (
	ClockRingSize = 16 // Keep last 16 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Clock event ring buffer (for post-mortem), shared by every rtc.Reader
	clockRingMu   sync.Mutex
	clockRing     [ClockRingSize]ClockEvent
	clockRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordClockEvent captures an RTC access in the ring buffer
func RecordClockEvent(eventType uint8, t TimeOfDay) {
	clockRingMu.Lock()
	defer clockRingMu.Unlock()

	idx := clockRingHead
	clockRing[idx] = ClockEvent{
		EventType: eventType,
		Time:      t,
	}
	clockRingHead = (idx + 1) % ClockRingSize
}

// RecentClockEvents returns the recorded events from oldest to newest
func RecentClockEvents() []ClockEvent {
	clockRingMu.Lock()
	defer clockRingMu.Unlock()

	events := make([]ClockEvent, 0, ClockRingSize)
	start := clockRingHead
	for i := uint8(0); i < ClockRingSize; i++ {
		evt := clockRing[(start+i)%ClockRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

// DumpClockRing outputs the clock ring buffer (call on shutdown/error)
func DumpClockRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[RTC] === Clock Ring Dump ===")
	for _, evt := range RecentClockEvents() {
		var name string
		switch evt.EventType {
		case EvtRead:
			name = "READ"
		case EvtSync:
			name = "SYNC"
		case EvtReadError:
			name = "READ_ERR!"
		case EvtSyncError:
			name = "SYNC_ERR!"
		default:
			name = "UNKNOWN"
		}
		debugPrintln("[RTC] " + name + " " + evt.Time.Format(true))
	}
	debugPrintln("[RTC] === End Dump ===")
}

// ClearClockRing clears the clock event buffer
func ClearClockRing() {
	clockRingMu.Lock()
	defer clockRingMu.Unlock()

	for i := range clockRing {
		clockRing[i] = ClockEvent{}
	}
	clockRingHead = 0
}
