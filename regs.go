package serial

// Register byte offsets of the canonical 16550 window.  All registers are
// accessed as 32-bit words; bits above 7 read as zero unless noted.
const (
	RegData        uintptr = 0x00 // read pops the rx fifo, write pushes tx
	RegIntrEnable  uintptr = 0x04 // layout InterruptMask
	RegIntrIdent   uintptr = 0x08 // read: ident, write: fifo control
	RegLineCtrl    uintptr = 0x0c
	RegModemCtrl   uintptr = 0x10
	RegLineStatus  uintptr = 0x14 // layout LineStatus, error bits W1C
	RegModemStatus uintptr = 0x18 // layout ModemStatus, deltas clear on read
	RegScratch     uintptr = 0x1c // no device function
)

// Extension block of PL011 compatible controllers, at the native PrimeCell
// offsets.  Interrupt enable, status and clear follow the InterruptMask
// layout of the canonical window.
const (
	RegDivisorInt  uintptr = 0x24 // IBRD, 16 bit integer baud divisor
	RegDivisorFrac uintptr = 0x28 // FBRD, fractional divisor in 1/64ths
	RegControl     uintptr = 0x30
	RegFifoLevels  uintptr = 0x34 // IFLS
	RegIntrStatus  uintptr = 0x40 // MIS
	RegIntrClear   uintptr = 0x44 // ICR, W1C
	RegDMACtrl     uintptr = 0x48 // DMACR, layout DMAStatus
)

// WindowSize is the size of the mapped register window.
const WindowSize uintptr = 0x4c

// FifoDepth is the depth of both hardware fifos in bytes.
const FifoDepth = 16

// Line control register bits.
const (
	LineCtrlWordMask     uint32 = 0x03 // 0b00 = 5 data bits .. 0b11 = 8
	LineCtrlStop2        uint32 = 1 << 2
	LineCtrlParityEnable uint32 = 1 << 3
	LineCtrlEvenParity   uint32 = 1 << 4
	LineCtrlStickParity  uint32 = 1 << 5 // parity fixed to EvenParity inverted
	LineCtrlBreak        uint32 = 1 << 6 // hold the line low
	LineCtrlDivisorLatch uint32 = 1 << 7 // legacy, divisors have own registers
)

// Fifo control register bits, write only at RegIntrIdent.
const (
	FifoEnable  uint32 = 1 << 0 // switching resets both fifos
	FifoClearRx uint32 = 1 << 1 // self clearing
	FifoClearTx uint32 = 1 << 2 // self clearing
)

// Interrupt ident register bits, read only.
const (
	IdentNoPending   uint32 = 1 << 0
	IdentMask        uint32 = 0x0e
	IdentFifoEnabled uint32 = 0xc0 // both set while the fifos are enabled
)

// Modem control register bits.
const (
	ModemCtrlDTR      uint32 = 1 << 0
	ModemCtrlRTS      uint32 = 1 << 1
	ModemCtrlOut1     uint32 = 1 << 2
	ModemCtrlOut2     uint32 = 1 << 3
	ModemCtrlLoopback uint32 = 1 << 4 // 16550 style feedback path
)

// Control register bits of the extension block.
const (
	CtrlUARTEnable uint32 = 1 << 0
	CtrlLowPower   uint32 = 1 << 2 // IrDA low power counter
	CtrlLoopback   uint32 = 1 << 7 // feedback path, same effect as ModemCtrlLoopback
	CtrlTxEnable   uint32 = 1 << 8
	CtrlRxEnable   uint32 = 1 << 9
	CtrlDTR        uint32 = 1 << 10
	CtrlRTS        uint32 = 1 << 11
)

// Fifo level register fields, trigger level select codes in eighths of the
// fifo depth.
const (
	FifoLevelTxMask uint32 = 0x07
	FifoLevelRxMask uint32 = 0x38
)
