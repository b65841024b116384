//go:build rp2040 || rp2350

package main

import (
	"errors"
	"machine"
	"sync"

	"rtctime/core"
)

var errBusNotConfigured = errors.New("I2C bus not configured")

// RPI2CDriver implements core.I2CDriver using TinyGo's machine.I2C for RP2040/RP2350.
// Only the RTC uses it, so transactions are short register reads and writes.
type RPI2CDriver struct {
	mu sync.Mutex

	// RP2040/RP2350 have I2C0 and I2C1; nil until configured
	buses [2]*machine.I2C
}

// NewRPI2CDriver constructs the driver
func NewRPI2CDriver() *RPI2CDriver {
	return &RPI2CDriver{}
}

// ConfigureBus initializes a bus on its default pins, or updates the
// baud rate if it is already running.
func (d *RPI2CDriver) ConfigureBus(bus core.I2CBusID, frequencyHz uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if int(bus) >= len(d.buses) {
		return errors.New("unsupported I2C bus ID")
	}
	if i2c := d.buses[bus]; i2c != nil {
		return i2c.SetBaudRate(frequencyHz)
	}

	// I2C0: SDA=GP4, SCL=GP5. I2C1: SDA=GP6, SCL=GP7.
	i2c := machine.I2C0
	if bus == 1 {
		i2c = machine.I2C1
	}
	if err := i2c.Configure(machine.I2CConfig{Frequency: frequencyHz}); err != nil {
		return err
	}

	d.buses[bus] = i2c
	return nil
}

// Write transmits data, usually a register pointer followed by values
func (d *RPI2CDriver) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i2c, err := d.get(bus)
	if err != nil {
		return err
	}
	return i2c.Tx(uint16(addr), data, nil)
}

// Read writes regData (if any) then reads readLen bytes with a repeated start
func (d *RPI2CDriver) Read(bus core.I2CBusID, addr core.I2CAddress, regData []byte, readLen uint8) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i2c, err := d.get(bus)
	if err != nil {
		return nil, err
	}

	readBuf := make([]byte, readLen)
	if err := i2c.Tx(uint16(addr), regData, readBuf); err != nil {
		return nil, err
	}
	return readBuf, nil
}

// get must be called with d.mu held
func (d *RPI2CDriver) get(bus core.I2CBusID) (*machine.I2C, error) {
	if int(bus) >= len(d.buses) || d.buses[bus] == nil {
		return nil, errBusNotConfigured
	}
	return d.buses[bus], nil
}
