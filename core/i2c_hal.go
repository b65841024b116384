package core

// I2CBusID selects one of the MCU's I2C controllers
type I2CBusID uint8

// I2CAddress is a 7-bit device address, 0x68 for the DS3231/DS1307
type I2CAddress uint8

// I2CDriver is implemented per target and carries all RTC traffic.
// Register access on the clock chip maps onto two calls:
// Write(bus, addr, [reg, values...]) and Read(bus, addr, [reg], n).
type I2CDriver interface {
	// ConfigureBus starts bus at frequencyHz, or retunes it if already running
	ConfigureBus(bus I2CBusID, frequencyHz uint32) error

	// Write sends data in a single write transaction
	Write(bus I2CBusID, addr I2CAddress, data []byte) error

	// Read sends regData (if any), then reads readLen bytes after a repeated start
	Read(bus I2CBusID, addr I2CAddress, regData []byte, readLen uint8) ([]byte, error)
}

var i2cDriver I2CDriver

// SetI2CDriver registers the target's driver at boot
func SetI2CDriver(d I2CDriver) {
	i2cDriver = d
}

// MustI2C returns the registered driver; boot order bugs panic here
func MustI2C() I2CDriver {
	if i2cDriver == nil {
		panic("I2C driver not configured")
	}
	return i2cDriver
}
