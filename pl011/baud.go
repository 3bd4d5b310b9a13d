package pl011

import "github.com/drivercraft/some-serial"

// Clock returns the reference clock in Hz.
func (u *UART) Clock() uint32 { return u.clock }

// BaudrateDivisor computes the fractional divisor for baud against the
// controller's clock, see serial.MakeDivisor.
func (u *UART) BaudrateDivisor(baud uint32) (serial.Divisor, error) {
	return serial.MakeDivisor(u.clock, baud)
}

// DivisorBaudrate reports the effective rate div produces.
func (u *UART) DivisorBaudrate(div serial.Divisor) uint32 {
	return div.Baudrate(u.clock)
}

// StoreDivisor programs the divisor registers.  The controller latches the
// new divisor with the next line control write.
func (u *UART) StoreDivisor(div serial.Divisor) {
	u.regs.ibrd.Store(uint32(div.Integer))
	u.regs.fbrd.Store(uint32(div.Fraction))
}

// LoadDivisor reads the programmed divisor back.
func (u *UART) LoadDivisor() serial.Divisor {
	return serial.Divisor{
		Integer:  uint16(u.regs.ibrd.Load()),
		Fraction: uint8(u.regs.fbrd.Load() & 0x3f),
	}
}

// DetectClock estimates the reference clock from the divisor the boot
// firmware left programmed, assuming it had set up 115200 baud.  An
// estimate outside the plausible 1 to 100 MHz reports DefaultClock.
func (u *UART) DetectClock() uint32 {
	est := uint64(u.regs.ibrd.Load()) * 16 * 115200
	if est < clockMin || est > clockMax {
		return DefaultClock
	}
	return uint32(est)
}
