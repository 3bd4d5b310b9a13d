package serial

import "time"

const (
	// drainTimeout bounds waiting for the transmitter to go idle.  Covers
	// a full frame down to roughly 1200 baud.
	drainTimeout = 10 * time.Millisecond

	// byteTimeout bounds single byte reads and writes.
	byteTimeout = 100 * time.Millisecond
)

// Port derives the full serial control surface from a Chip's primitives.
//
// Port holds no state besides the chip handle; every query reads the
// hardware.  Single register operations are safe against concurrent raw
// accesses, but multi register sequences (Configure, Open, Close, the
// setters) must not overlap each other or I/O.  This exclusion is left to
// the caller, as usual for single owner devices.
type Port struct {
	hw Chip
}

// NewPort derives a port from chip.
func NewPort(chip Chip) *Port { return &Port{hw: chip} }

// Chip returns the underlying chip, for family specific extensions.
func (p *Port) Chip() Chip { return p.hw }

// Open resets the controller into a known state and enables it: interrupts
// disabled and acknowledged, fifos enabled, flushed and set to the
// recommended trigger level, latched errors cleared, transmitter and
// receiver on.  The line format is left as is, use Configure to set it.
func (p *Port) Open() error {
	p.hw.WriteRegSync(RegIntrEnable, 0)
	p.hw.WriteRegSync(RegIntrClear, uint32(IntrAll))
	p.hw.WriteRegSync(RegIntrIdent, FifoEnable|FifoClearRx|FifoClearTx)
	lvl := RecommendedFifoTriggerLevel(FifoDepth)
	if err := p.SetFifoTriggerLevels(lvl, lvl); err != nil {
		return err
	}
	p.ClearErrors()
	p.hw.SetRegBits(RegControl, CtrlUARTEnable|CtrlTxEnable|CtrlRxEnable)
	return nil
}

// Close drains pending output and disables the controller.  The drain is
// bounded; on expiry the controller is disabled anyway and ErrTimeout
// returned.
func (p *Port) Close() error {
	p.hw.WriteRegSync(RegIntrEnable, 0)
	err := p.hw.WaitRegBitSet(RegLineStatus, uint32(LineTxEmpty), drainTimeout)
	p.hw.ClearRegBits(RegControl, CtrlUARTEnable|CtrlTxEnable|CtrlRxEnable)
	return err
}

// TxEmpty reports whether the transmitter including its shift register is
// idle.
func (p *Port) TxEmpty() bool {
	return p.hw.IsRegBitSet(RegLineStatus, uint32(LineTxEmpty))
}

// RxEmpty reports whether no received byte is waiting.
func (p *Port) RxEmpty() bool {
	return !p.hw.IsRegBitSet(RegLineStatus, uint32(LineDataReady))
}

// TxFifoLevel estimates the pending bytes in the tx fifo.  The family has
// no level registers, so this is coarse: 0 when the holding register is
// empty, else 1.
func (p *Port) TxFifoLevel() int {
	if p.hw.IsRegBitSet(RegLineStatus, uint32(LineTxHoldingEmpty)) {
		return 0
	}
	return 1
}

// RxFifoLevel estimates the pending bytes in the rx fifo: 1 while data is
// ready, else 0.
func (p *Port) RxFifoLevel() int {
	if p.hw.IsRegBitSet(RegLineStatus, uint32(LineDataReady)) {
		return 1
	}
	return 0
}

// LineStatus returns all line status bits in one read.
func (p *Port) LineStatus() LineStatus {
	return LineStatus(p.hw.ReadRegSync(RegLineStatus))
}

// ClearErrors clears the latched error bits.  Data ready and transmitter
// state are untouched.
func (p *Port) ClearErrors() {
	p.hw.WriteRegSync(RegLineStatus, uint32(LineErrors))
}

// ReadReg reads a register directly, for family specific extensions.
func (p *Port) ReadReg(off uintptr) uint32 { return p.hw.ReadRegSync(off) }

// WriteReg writes a register directly.
func (p *Port) WriteReg(off uintptr, val uint32) { p.hw.WriteRegSync(off, val) }

// ModifyReg sets the masked bits of a register to mask&set, preserving all
// others.
func (p *Port) ModifyReg(off uintptr, mask, set uint32) { p.hw.ModifyReg(off, mask, set) }
