package rtc

import (
	"errors"

	"rtctime/core"
)

// registerBus is an in-memory RTC register file behind a drivers.I2C
type registerBus struct {
	regs   [64]byte
	txErr  error
	writes int
}

func (b *registerBus) Tx(addr uint16, w, r []byte) error {
	if b.txErr != nil {
		return b.txErr
	}
	if addr != Address {
		return errors.New("no device at address")
	}
	if len(w) == 0 {
		return errors.New("missing register pointer")
	}

	ptr := int(w[0])
	if len(r) > 0 {
		copy(r, b.regs[ptr:])
		return nil
	}
	b.writes++
	copy(b.regs[ptr:], w[1:])
	return nil
}

// setClock stores a date and time in the timekeeping registers as BCD
func (b *registerBus) setClock(year, month, day, hour, minute, second int) {
	b.regs[0] = bcd(second)
	b.regs[1] = bcd(minute)
	b.regs[2] = bcd(hour)
	b.regs[3] = 1
	b.regs[4] = bcd(day)
	b.regs[5] = bcd(month)
	b.regs[6] = bcd(year - 2000)
}

func bcd(v int) byte {
	return byte(v/10<<4 | v%10)
}

// mockI2CDriver is a core.I2CDriver backed by registerBus
type mockI2CDriver struct {
	bus        *registerBus
	configured map[core.I2CBusID]uint32
	shortRead  bool
}

func newMockI2CDriver(bus *registerBus) *mockI2CDriver {
	return &mockI2CDriver{
		bus:        bus,
		configured: make(map[core.I2CBusID]uint32),
	}
}

func (m *mockI2CDriver) ConfigureBus(bus core.I2CBusID, frequencyHz uint32) error {
	if bus > 1 {
		return errors.New("unsupported I2C bus ID")
	}
	m.configured[bus] = frequencyHz
	return nil
}

func (m *mockI2CDriver) Write(bus core.I2CBusID, addr core.I2CAddress, data []byte) error {
	if _, ok := m.configured[bus]; !ok {
		return errors.New("I2C bus not configured")
	}
	return m.bus.Tx(uint16(addr), data, nil)
}

func (m *mockI2CDriver) Read(bus core.I2CBusID, addr core.I2CAddress, regData []byte, readLen uint8) ([]byte, error) {
	if _, ok := m.configured[bus]; !ok {
		return nil, errors.New("I2C bus not configured")
	}
	if m.shortRead {
		readLen--
	}
	buf := make([]byte, readLen)
	if err := m.bus.Tx(uint16(addr), regData, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
