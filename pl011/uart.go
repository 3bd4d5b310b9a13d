// Package pl011 drives PL011 compatible UART controllers that expose the
// canonical 16550 register window together with the PrimeCell extension
// block.
//
// UART implements serial.Chip; the embedded serial.Port provides the
// derived control surface, so a *UART is used directly:
//
//	uart := pl011.New(0x0900_0000, 24e6)
//	uart.Configure(serial.DefaultConfig())
//	uart.WriteString("hello\r\n")
package pl011

import (
	"time"
	"unsafe"

	"github.com/drivercraft/some-serial"
	"github.com/drivercraft/some-serial/debug"
	"github.com/drivercraft/some-serial/mmio"
)

// DefaultClock is assumed when the reference clock is unknown or
// implausible.
const DefaultClock = 24_000_000 // Hz

const (
	clockMin = 1_000_000
	clockMax = 100_000_000
)

// registers mirrors the controller's window.  The canonical 16550
// registers come first, the extension block keeps its native offsets.
type registers struct {
	data    mmio.U32
	intrEn  mmio.U32
	fifoCtl mmio.U32 // ident on read
	lineCtl mmio.U32
	mdmCtl  mmio.U32
	lineSt  mmio.U32
	mdmSt   mmio.U32
	scratch mmio.U32
	_       mmio.U32
	ibrd    mmio.U32
	fbrd    mmio.U32
	_       mmio.U32
	ctl     mmio.U32
	levels  mmio.U32
	_       [2]mmio.U32
	intrSt  mmio.U32
	intrClr mmio.U32
	dmaCtl  mmio.U32
}

// UART is a single PL011 compatible controller.
type UART struct {
	*serial.Port

	regs  *registers
	base  uintptr
	clock uint32
	epoch time.Time
}

// New binds the controller mapped at base.  clock is the reference clock in
// Hz; implausible values outside 1 to 100 MHz fall back to DefaultClock,
// zero means estimate it with DetectClock.
func New(base uintptr, clock uint32) *UART {
	debug.Assert(base != 0 && base%4 == 0, "invalid uart base")
	u := &UART{
		regs:  (*registers)(unsafe.Pointer(base)),
		base:  base,
		epoch: time.Now(),
	}
	if clock == 0 {
		clock = u.DetectClock()
	}
	if clock < clockMin || clock > clockMax {
		clock = DefaultClock
	}
	u.clock = clock
	u.Port = serial.NewPort(u)
	return u
}

// Base returns the controller's window address.
func (u *UART) Base() uintptr { return u.base }

func (u *UART) cell(off uintptr) *mmio.U32 {
	debug.Assert(off < serial.WindowSize && off%4 == 0, "invalid uart register")
	return (*mmio.U32)(unsafe.Pointer(u.base + off))
}

// Probe checks for a responding device by exercising the scratch register.
func (u *UART) Probe() error {
	for _, pattern := range [...]uint32{0xa5, 0x5a} {
		u.regs.scratch.Store(pattern)
		if u.regs.scratch.Load() != pattern {
			return serial.ErrNoDevice
		}
	}
	return nil
}

// EnableLoopback routes the transmitter back into the receiver.  This only
// flips the feedback path and is deliberately not a reconfiguration: no
// drain, no fifo flush, queued bytes stay queued.
func (u *UART) EnableLoopback() { u.regs.ctl.SetBits(serial.CtrlLoopback) }

// DisableLoopback reconnects the receiver to the line.
func (u *UART) DisableLoopback() { u.regs.ctl.ClearBits(serial.CtrlLoopback) }

// LoopbackEnabled reports whether the feedback path is active.
func (u *UART) LoopbackEnabled() bool {
	return u.regs.ctl.LoadBits(serial.CtrlLoopback) != 0
}
