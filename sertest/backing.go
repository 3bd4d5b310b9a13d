// Package sertest provides a simulated serial.Chip for tests.
//
// Backing models the canonical window plus the extension block over plain
// memory, with just enough device behavior for the driver's corner cases:
// fifos, the loopback path, read-clear and write-one-clear bits, a dma
// block that can be wired or absent, and a simulated microsecond clock that
// advances per wait poll so timeout paths run instantly and
// deterministically.
package sertest

import (
	"sync"
	"time"

	"github.com/drivercraft/some-serial"
)

// Clock is the simulated reference clock in Hz.
const Clock = 24_000_000

const memWords = int(serial.WindowSize / 4)

// Write is one recorded register write.
type Write struct {
	Off uintptr
	Val uint32
}

// Backing is a simulated controller.  Use NewBacking; configure the
// exported knobs before driving it.  Backing is not safe for concurrent
// use beyond what a real register window would be: single accesses are
// atomic, sequences are the caller's problem.
type Backing struct {
	mu sync.Mutex

	mem [memWords]uint32
	rx  []byte // receive fifo, head first
	tx  []byte // transcript of bytes that left on the line

	lineSt uint32 // latched error bits
	mdmSt  uint32 // modem status, deltas clear on read
	intrSt uint32 // latched interrupt status

	// DMAWired makes the dma control register writable.  Unwired it reads
	// as zero and ignores writes, like a controller without dma wiring.
	DMAWired bool

	// DrainReads makes the line status report a busy transmitter for the
	// next n reads, each read consuming one.
	DrainReads int

	// Step is how many simulated microseconds pass per wait poll.
	Step uint32

	// Now is the simulated clock, advanced by the wait methods.
	Now uint32

	writes      []Write
	flushedBusy bool
}

// NewBacking returns an idle controller with 10µs poll steps.
func NewBacking() *Backing {
	return &Backing{Step: 10}
}

// Receive queues data as if it arrived on the line.  Bytes beyond the fifo
// depth are dropped and latch an overrun, like the real receiver.
func (b *Backing) Receive(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, c := range data {
		b.push(c)
	}
}

func (b *Backing) push(c byte) {
	if len(b.rx) >= serial.FifoDepth {
		b.lineSt |= uint32(serial.LineOverrunError)
		b.intrSt |= uint32(serial.IntrRxLineStatus)
		return
	}
	b.rx = append(b.rx, c)
	b.intrSt |= uint32(serial.IntrRxAvailable)
}

// Sent returns the transcript of bytes transmitted to the line, i.e. while
// the loopback path was off.
func (b *Backing) Sent() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.tx...)
}

// Writes returns the recorded register writes in order.
func (b *Backing) Writes() []Write {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Write(nil), b.writes...)
}

// FlushedWhileBusy reports whether a fifo clear was written while the
// transmitter still reported busy.
func (b *Backing) FlushedWhileBusy() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.flushedBusy
}

// SetModemLines sets the modem input lines (the ModemCTS..ModemDCD bits of
// lines) and latches a delta bit for every line that changed.  TrailingRI
// latches only when RI drops.
func (b *Backing) SetModemLines(lines serial.ModemStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	inputs := uint32(lines) &^ uint32(serial.ModemDeltas)
	changed := (b.mdmSt ^ inputs) &^ uint32(serial.ModemDeltas)
	delta := (changed &^ uint32(serial.ModemRI)) >> 4
	if b.mdmSt&uint32(serial.ModemRI) != 0 && inputs&uint32(serial.ModemRI) == 0 {
		delta |= uint32(serial.ModemTrailingRI)
	}
	b.mdmSt = inputs | b.mdmSt&uint32(serial.ModemDeltas) | delta
	if changed != 0 {
		b.intrSt |= uint32(serial.IntrModemStatus)
	}
}

// EnableLoopback routes transmitted bytes back into the receive fifo, like
// the controller's feedback path.
func (b *Backing) EnableLoopback() {
	b.SetRegBits(serial.RegControl, serial.CtrlLoopback)
}

// DisableLoopback reconnects the transmitter to the line transcript.
func (b *Backing) DisableLoopback() {
	b.ClearRegBits(serial.RegControl, serial.CtrlLoopback)
}

// LoopbackEnabled reports whether the feedback path is active.
func (b *Backing) LoopbackEnabled() bool {
	return b.IsRegBitSet(serial.RegControl, serial.CtrlLoopback)
}

func idx(off uintptr) int { return int(off / 4) }

// read implements the device side of a register read.  Must be called with
// the lock held.
func (b *Backing) read(off uintptr) uint32 {
	switch off {
	case serial.RegData:
		if len(b.rx) == 0 {
			return 0
		}
		v := uint32(b.rx[0])
		b.rx = b.rx[1:]
		return v
	case serial.RegLineStatus:
		return b.lineStatus()
	case serial.RegModemStatus:
		v := b.mdmSt
		b.mdmSt &^= uint32(serial.ModemDeltas)
		return v
	case serial.RegIntrIdent:
		v := uint32(0)
		if b.intrSt == 0 {
			v |= serial.IdentNoPending
		}
		if b.mem[idx(serial.RegIntrIdent)]&serial.FifoEnable != 0 {
			v |= serial.IdentFifoEnabled
		}
		return v
	case serial.RegIntrStatus:
		return b.intrSt
	case serial.RegDMACtrl:
		if !b.DMAWired {
			return 0
		}
	}
	return b.mem[idx(off)]
}

func (b *Backing) lineStatus() uint32 {
	v := b.lineSt
	if len(b.rx) > 0 {
		v |= uint32(serial.LineDataReady)
	}
	if b.DrainReads > 0 {
		b.DrainReads--
	} else {
		v |= uint32(serial.LineTxHoldingEmpty | serial.LineTxEmpty)
	}
	return v
}

// write implements the device side of a register write.  Must be called
// with the lock held.
func (b *Backing) write(off uintptr, v uint32) {
	b.writes = append(b.writes, Write{off, v})
	switch off {
	case serial.RegData:
		b.transmit(byte(v))
	case serial.RegIntrIdent:
		if v&(serial.FifoClearRx|serial.FifoClearTx) != 0 && b.DrainReads > 0 {
			b.flushedBusy = true
		}
		old := b.mem[idx(off)]
		if v&serial.FifoClearRx != 0 || (old^v)&serial.FifoEnable != 0 {
			b.rx = b.rx[:0]
		}
		b.mem[idx(off)] = v &^ (serial.FifoClearRx | serial.FifoClearTx)
	case serial.RegLineStatus:
		b.lineSt &^= v & uint32(serial.LineErrors)
	case serial.RegModemStatus:
		// read only
	case serial.RegIntrStatus:
		// read only
	case serial.RegIntrClear:
		b.intrSt &^= v
	case serial.RegDMACtrl:
		if b.DMAWired {
			b.mem[idx(off)] = v & 0x07
		}
	default:
		b.mem[idx(off)] = v
	}
}

func (b *Backing) transmit(c byte) {
	loop := b.mem[idx(serial.RegControl)]&serial.CtrlLoopback != 0 ||
		b.mem[idx(serial.RegModemCtrl)]&serial.ModemCtrlLoopback != 0
	if loop {
		b.push(c)
		return
	}
	b.tx = append(b.tx, c)
	b.intrSt |= uint32(serial.IntrTxEmpty)
}

// RegisterAccess implementation.  The model has no bus posting, the Sync
// variants equal the plain ones.

func (b *Backing) ReadReg(off uintptr) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read(off)
}

func (b *Backing) WriteReg(off uintptr, val uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(off, val)
}

func (b *Backing) ReadRegSync(off uintptr) uint32       { return b.ReadReg(off) }
func (b *Backing) WriteRegSync(off uintptr, val uint32) { b.WriteReg(off, val) }

func (b *Backing) ModifyReg(off uintptr, mask, set uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v := b.read(off)
	b.write(off, v&^mask|set&mask)
}

func (b *Backing) SetRegBits(off uintptr, bits uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(off, b.read(off)|bits)
}

func (b *Backing) ClearRegBits(off uintptr, bits uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(off, b.read(off)&^bits)
}

func (b *Backing) IsRegBitSet(off uintptr, bit uint32) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read(off)&bit != 0
}

func (b *Backing) TimestampMicros() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Now
}

func (b *Backing) WaitRegBitSet(off uintptr, bit uint32, timeout time.Duration) error {
	return b.wait(off, bit, timeout, false)
}

func (b *Backing) WaitRegBitClear(off uintptr, bit uint32, timeout time.Duration) error {
	return b.wait(off, bit, timeout, true)
}

func (b *Backing) wait(off uintptr, mask uint32, timeout time.Duration, clear bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if timeout < 0 {
		timeout = 0
	}
	limit := uint32(timeout / time.Microsecond)
	step := b.Step
	if step == 0 {
		step = 10
	}
	start := b.Now
	for {
		v := b.read(off) & mask
		if clear == (v == 0) {
			return nil
		}
		b.Now += step
		if b.Now-start >= limit {
			return serial.ErrTimeout
		}
	}
}

// BaudrateSupport implementation, divisors live at the extension offsets.

func (b *Backing) Clock() uint32 { return Clock }

func (b *Backing) BaudrateDivisor(baud uint32) (serial.Divisor, error) {
	return serial.MakeDivisor(Clock, baud)
}

func (b *Backing) DivisorBaudrate(div serial.Divisor) uint32 {
	return div.Baudrate(Clock)
}

func (b *Backing) StoreDivisor(div serial.Divisor) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.write(serial.RegDivisorInt, uint32(div.Integer))
	b.write(serial.RegDivisorFrac, uint32(div.Fraction))
}

func (b *Backing) LoadDivisor() serial.Divisor {
	b.mu.Lock()
	defer b.mu.Unlock()
	return serial.Divisor{
		Integer:  uint16(b.mem[idx(serial.RegDivisorInt)]),
		Fraction: uint8(b.mem[idx(serial.RegDivisorFrac)] & 0x3f),
	}
}
