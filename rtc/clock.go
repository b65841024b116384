// Real-time-clock support
// Wraps the TinyGo RTC drivers so readings come back as core.TimeOfDay
package rtc

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ds1307"
	"tinygo.org/x/drivers/ds3231"
)

// Address is the I2C address shared by the DS3231 and DS1307
const Address = ds3231.Address

var (
	ErrUnknownChip  = errors.New("unknown RTC chip")
	ErrNotCanonical = errors.New("time of day outside 00:00:00-23:59:59")
)

// Clock is an RTC peripheral that stores a full date and time.
// It is implemented by *ds3231.Device and *ds1307.Device.
type Clock interface {
	ReadTime() (time.Time, error)
	SetTime(t time.Time) error
}

// Chip selects which RTC driver to use
type Chip uint8

const (
	ChipDS3231 Chip = iota
	ChipDS1307
)

func (c Chip) String() string {
	switch c {
	case ChipDS3231:
		return "ds3231"
	case ChipDS1307:
		return "ds1307"
	default:
		return "unknown"
	}
}

// ParseChip maps a chip name such as "ds3231" to its Chip
func ParseChip(name string) (Chip, error) {
	switch name {
	case "ds3231":
		return ChipDS3231, nil
	case "ds1307":
		return ChipDS1307, nil
	default:
		return 0, &Error{Op: "parse chip " + name, Err: ErrUnknownChip}
	}
}

// NewClock creates the driver for chip on an already configured bus.
// It does not touch the device.
func NewClock(chip Chip, bus drivers.I2C) (Clock, error) {
	switch chip {
	case ChipDS3231:
		dev := ds3231.New(bus)
		dev.Configure()
		return &dev, nil
	case ChipDS1307:
		dev := ds1307.New(bus)
		return &dev, nil
	default:
		return nil, &Error{Op: "new clock", Err: ErrUnknownChip}
	}
}

// Error records a failed RTC operation
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return "rtc: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
