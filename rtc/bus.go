package rtc

import (
	"errors"

	"rtctime/core"
)

// BusAdapter exposes one bus of a core.I2CDriver as a drivers.I2C,
// which is what the TinyGo RTC drivers expect.
type BusAdapter struct {
	Driver core.I2CDriver
	Bus    core.I2CBusID
}

// NewBusAdapter configures bus at frequencyHz and wraps it
func NewBusAdapter(driver core.I2CDriver, bus core.I2CBusID, frequencyHz uint32) (*BusAdapter, error) {
	if err := driver.ConfigureBus(bus, frequencyHz); err != nil {
		return nil, &Error{Op: "configure bus", Err: err}
	}
	return &BusAdapter{Driver: driver, Bus: bus}, nil
}

// Tx performs a write-only transaction when r is empty, otherwise a
// register read with w sent first.
func (b *BusAdapter) Tx(addr uint16, w, r []byte) error {
	// Mask address to 7 bits
	address := core.I2CAddress(addr & 0x7F)

	if len(r) == 0 {
		return b.Driver.Write(b.Bus, address, w)
	}
	if len(r) > 255 {
		return errors.New("I2C read too long")
	}

	data, err := b.Driver.Read(b.Bus, address, w, uint8(len(r)))
	if err != nil {
		return err
	}
	if len(data) < len(r) {
		return errors.New("I2C short read")
	}
	copy(r, data)
	return nil
}
