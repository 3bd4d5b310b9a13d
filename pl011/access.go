package pl011

import (
	"runtime"
	"time"

	"github.com/drivercraft/some-serial"
)

// The controller sits on a strongly ordered peripheral bus that completes
// writes in order, so the Sync variants are the plain accesses.

func (u *UART) ReadReg(off uintptr) uint32           { return u.cell(off).Load() }
func (u *UART) WriteReg(off uintptr, val uint32)     { u.cell(off).Store(val) }
func (u *UART) ReadRegSync(off uintptr) uint32       { return u.cell(off).Load() }
func (u *UART) WriteRegSync(off uintptr, val uint32) { u.cell(off).Store(val) }

// ModifyReg sets the masked bits to mask&set, preserving all others.  Not
// usable on registers with read or write side effects; concurrent
// read-modify-write of the same offset must be serialized by the caller.
func (u *UART) ModifyReg(off uintptr, mask, set uint32) {
	u.cell(off).StoreBits(mask, set)
}

func (u *UART) SetRegBits(off uintptr, bits uint32)   { u.cell(off).SetBits(bits) }
func (u *UART) ClearRegBits(off uintptr, bits uint32) { u.cell(off).ClearBits(bits) }

func (u *UART) IsRegBitSet(off uintptr, bit uint32) bool {
	return u.cell(off).LoadBits(bit) != 0
}

// TimestampMicros returns microseconds since the instance was created,
// wrapping at 2^32.
func (u *UART) TimestampMicros() uint32 {
	return uint32(time.Since(u.epoch) / time.Microsecond)
}

func (u *UART) WaitRegBitSet(off uintptr, bit uint32, timeout time.Duration) error {
	return u.wait(off, bit, timeout, false)
}

func (u *UART) WaitRegBitClear(off uintptr, bit uint32, timeout time.Duration) error {
	return u.wait(off, bit, timeout, true)
}

// wait polls until any bit in mask is set, or all are clear if clear is
// true.  The wrapping subtraction keeps elapsed time correct across the
// timestamp wrap.  Non-positive timeouts degenerate to a single poll.
func (u *UART) wait(off uintptr, mask uint32, timeout time.Duration, clear bool) error {
	if timeout < 0 {
		timeout = 0
	}
	limit := uint32(timeout / time.Microsecond)
	cell := u.cell(off)
	start := u.TimestampMicros()
	for {
		v := cell.LoadBits(mask)
		if clear == (v == 0) {
			return nil
		}
		if u.TimestampMicros()-start >= limit {
			return serial.ErrTimeout
		}
		runtime.Gosched()
	}
}
