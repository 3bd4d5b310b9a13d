package serial

import "time"

// RegisterAccess is the raw register window of a controller.  Offsets are
// byte offsets, see the Reg* constants.
//
// Plain accesses are volatile but may still be posted by the bus; the Sync
// variants additionally complete on the device before returning.  On simple
// strongly ordered buses both behave the same.  The derived Port uses plain
// accesses on the data path and Sync accesses in control sequences.
type RegisterAccess interface {
	ReadReg(off uintptr) uint32
	WriteReg(off uintptr, val uint32)
	ReadRegSync(off uintptr) uint32
	WriteRegSync(off uintptr, val uint32)

	// ModifyReg sets the masked bits to mask&set and preserves all
	// others.  Not usable on registers with read or write side effects.
	// Concurrent read-modify-write of the same offset must be serialized
	// by the caller.
	ModifyReg(off uintptr, mask, set uint32)
	SetRegBits(off uintptr, bits uint32)
	ClearRegBits(off uintptr, bits uint32)

	// IsRegBitSet reports whether any of the bits in bit reads as set.
	IsRegBitSet(off uintptr, bit uint32) bool

	// WaitRegBitSet polls at a fixed cadence until any of the bits in bit
	// reads as set.  A zero or negative timeout probes exactly once.
	// Returns ErrTimeout on expiry.
	WaitRegBitSet(off uintptr, bit uint32, timeout time.Duration) error

	// WaitRegBitClear polls until none of the bits in bit reads as set.
	WaitRegBitClear(off uintptr, bit uint32, timeout time.Duration) error

	// TimestampMicros returns a monotonic timestamp in microseconds.  It
	// wraps after about 71 minutes; elapsed time must be computed with
	// wrapping uint32 subtraction, which the Wait methods do.
	TimestampMicros() uint32
}

// Divisor is a fractional baudrate divisor.  The effective divisor is
// Integer + Fraction/64.
type Divisor struct {
	Integer  uint16
	Fraction uint8
}

// MakeDivisor computes the divisor clock/(16*baud) with the fractional part
// rounded to the nearest 1/64th.  A rounding carry propagates into the
// integer part.  Returns ErrInvalidBaudrate if baud is zero or the integer
// part leaves the 16 bit range, instead of wrapping.
func MakeDivisor(clock, baud uint32) (Divisor, error) {
	if baud == 0 {
		return Divisor{}, ErrInvalidBaudrate
	}
	den := 16 * uint64(baud)
	div := uint64(clock) / den
	frac := (uint64(clock)%den*64 + den/2) / den
	if frac == 64 {
		div++
		frac = 0
	}
	if div == 0 || div > 0xffff {
		return Divisor{}, ErrInvalidBaudrate
	}
	return Divisor{Integer: uint16(div), Fraction: uint8(frac)}, nil
}

// Baudrate reports the rate the divisor effectively produces from clock,
// including the quantization error.  A zero divisor reports zero.
func (d Divisor) Baudrate(clock uint32) uint32 {
	steps := uint64(d.Integer)*64 + uint64(d.Fraction)
	if steps == 0 {
		return 0
	}
	return uint32(uint64(clock) * 64 / (16 * steps))
}

// BaudrateSupport is the clock aware half of a controller: divisor
// arithmetic plus access to the divisor registers.
type BaudrateSupport interface {
	// Clock returns the reference clock in Hz.  Immutable for the
	// lifetime of the instance.
	Clock() uint32

	// BaudrateDivisor computes the divisor for baud against the
	// instance's clock, see MakeDivisor for the error cases.
	BaudrateDivisor(baud uint32) (Divisor, error)

	// DivisorBaudrate is the inverse, reporting the effective rate of
	// div including quantization error.
	DivisorBaudrate(div Divisor) uint32

	// StoreDivisor programs the divisor registers.  The controller
	// latches the new divisor with the next line control write.
	StoreDivisor(div Divisor)

	// LoadDivisor reads the programmed divisor back.
	LoadDivisor() Divisor
}

// Chip is a controller providing all primitives Port derives from.
type Chip interface {
	RegisterAccess
	BaudrateSupport
}
