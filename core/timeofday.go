// Time-of-day value type
// Holds an RTC reading or a trigger time as raw hour/minute/second bytes
package core

// TimeOfDay is a wall-clock time within a single day.
// Fields are stored verbatim and never range-checked, so the value may
// leave the canonical 00:00:00-23:59:59 range after Add or Sub.
// The zero value is 00:00:00.
type TimeOfDay struct {
	hour   uint8
	minute uint8
	second uint8
}

// Reading is anything that exposes the current hour, minute and second,
// such as an RTC sample or a time.Time.
type Reading interface {
	Hour() int
	Minute() int
	Second() int
}

// Seconds per unit, used by Seconds and FromSeconds
const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// NewTimeOfDay builds a time from explicit fields without validation
func NewTimeOfDay(hour, minute, second uint8) TimeOfDay {
	return TimeOfDay{hour: hour, minute: minute, second: second}
}

// FromReading copies hour, minute and second out of a clock reading.
// Values are truncated to a byte, the same as the RTC registers hold them.
func FromReading(r Reading) TimeOfDay {
	return TimeOfDay{
		hour:   uint8(r.Hour()),
		minute: uint8(r.Minute()),
		second: uint8(r.Second()),
	}
}

// FromSeconds converts seconds since midnight back into a time.
// Inputs past one day keep carrying into the hour field; there is no day rollover.
func FromSeconds(n uint32) TimeOfDay {
	return TimeOfDay{
		hour:   uint8(n / secondsPerHour),
		minute: uint8(n % secondsPerHour / secondsPerMinute),
		second: uint8(n % secondsPerMinute),
	}
}

// Hour returns the stored hour
func (t TimeOfDay) Hour() uint8 { return t.hour }

// Minute returns the stored minute
func (t TimeOfDay) Minute() uint8 { return t.minute }

// Second returns the stored second
func (t TimeOfDay) Second() uint8 { return t.second }

// Matches reports whether hour and minute are exactly h:m, ignoring seconds.
// A trigger checked with Matches fires on any second within the minute.
func (t TimeOfDay) Matches(hour, minute uint8) bool {
	return t.hour == hour && t.minute == minute
}

// MatchesExact reports whether all three fields match
func (t TimeOfDay) MatchesExact(hour, minute, second uint8) bool {
	return t.hour == hour && t.minute == minute && t.second == second
}

// Equal reports whether both times hold the same fields
func (t TimeOfDay) Equal(o TimeOfDay) bool {
	return t == o
}

// NotEqual is the negation of Equal
func (t TimeOfDay) NotEqual(o TimeOfDay) bool {
	return !t.Equal(o)
}

// Compare orders times lexicographically by hour, minute, then second.
// It returns -1 if t is before o, +1 if after, 0 if equal.
// There is no wraparound: 23:59:59 is after 00:00:01.
func (t TimeOfDay) Compare(o TimeOfDay) int {
	switch {
	case t.hour != o.hour:
		return cmpByte(t.hour, o.hour)
	case t.minute != o.minute:
		return cmpByte(t.minute, o.minute)
	default:
		return cmpByte(t.second, o.second)
	}
}

// After reports whether t is strictly later than o
func (t TimeOfDay) After(o TimeOfDay) bool {
	return t.Compare(o) > 0
}

// Before reports whether t is strictly earlier than o
func (t TimeOfDay) Before(o TimeOfDay) bool {
	return !t.After(o) && !t.Equal(o)
}

// AfterOrEqual reports whether t is later than or equal to o
func (t TimeOfDay) AfterOrEqual(o TimeOfDay) bool {
	return t.After(o) || t.Equal(o)
}

// BeforeOrEqual reports whether t is earlier than or equal to o
func (t TimeOfDay) BeforeOrEqual(o TimeOfDay) bool {
	return t.Before(o) || t.Equal(o)
}

// Add sums the fields independently.
// Nothing carries from seconds into minutes or minutes into hours,
// so 00:45:30 + 00:30:40 is hour 0, minute 75, second 70.
// Each field wraps at 256 like the byte it is stored in.
func (t TimeOfDay) Add(o TimeOfDay) TimeOfDay {
	return TimeOfDay{
		hour:   t.hour + o.hour,
		minute: t.minute + o.minute,
		second: t.second + o.second,
	}
}

// Sub subtracts the fields independently, mirroring Add.
// Nothing borrows between fields; a field that goes below zero wraps at 256.
// Use Seconds for a real difference between two canonical times.
func (t TimeOfDay) Sub(o TimeOfDay) TimeOfDay {
	return TimeOfDay{
		hour:   t.hour - o.hour,
		minute: t.minute - o.minute,
		second: t.second - o.second,
	}
}

// Seconds returns hour*3600 + minute*60 + second.
// It is the elapsed time since midnight only for canonical values.
func (t TimeOfDay) Seconds() uint32 {
	return uint32(t.hour)*secondsPerHour + uint32(t.minute)*secondsPerMinute + uint32(t.second)
}

// InCanonicalRange reports whether the fields fit 00:00:00-23:59:59
func (t TimeOfDay) InCanonicalRange() bool {
	return t.hour < 24 && t.minute < 60 && t.second < 60
}

// Format renders "HH:MM:SS", or "HH:MM" when showSeconds is false.
// Fields are zero-padded to two digits; values of 100 or more keep all their digits.
func (t TimeOfDay) Format(showSeconds bool) string {
	buf := make([]byte, 0, 11)
	buf = appendPad2(buf, t.hour)
	buf = append(buf, ':')
	buf = appendPad2(buf, t.minute)
	if showSeconds {
		buf = append(buf, ':')
		buf = appendPad2(buf, t.second)
	}
	return string(buf)
}

// String implements fmt.Stringer
func (t TimeOfDay) String() string {
	return t.Format(true)
}

func cmpByte(a, b uint8) int {
	if a > b {
		return 1
	}
	if a < b {
		return -1
	}
	return 0
}
