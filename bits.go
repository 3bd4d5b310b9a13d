package serial

import "strings"

// bitString names the set bits of v, lowest first, joined like
// "RxAvailable + TxEmpty".
func bitString(v uint32, names []string) string {
	var sb strings.Builder
	for i, name := range names {
		if v&(1<<i) != 0 {
			if sb.Len() != 0 {
				sb.WriteString(" + ")
			}
			sb.WriteString(name)
		}
	}
	return sb.String()
}

// InterruptMask selects interrupt sources of the controller.  The bit
// layout matches the interrupt enable, status and clear registers.
type InterruptMask uint32

const (
	IntrRxAvailable  InterruptMask = 1 << iota // received data above trigger level
	IntrTxEmpty                                // transmit holding register empty
	IntrRxLineStatus                           // overrun, parity, framing or break
	IntrModemStatus                            // modem input changed state
	IntrCharTimeout                            // stale data sitting in the rx fifo

	IntrAll InterruptMask = 1<<iota - 1
)

var intrNames = []string{
	"RxAvailable", "TxEmpty", "RxLineStatus", "ModemStatus", "CharTimeout",
}

func (m InterruptMask) String() string { return bitString(uint32(m), intrNames) }

// InterruptStatus reports latched pending interrupt sources, same bit
// layout as InterruptMask.
type InterruptStatus uint32

// Pending reports whether any source is latched.
func (s InterruptStatus) Pending() bool { return s != 0 }

func (s InterruptStatus) String() string { return bitString(uint32(s), intrNames) }

// LineStatus is the receiver and transmitter state as latched in the line
// status register.
type LineStatus uint32

const (
	LineDataReady      LineStatus = 1 << iota // at least one received byte readable
	LineOverrunError                          // a received byte was lost, fifo was full
	LineParityError                           // oldest byte in the fifo had bad parity
	LineFramingError                          // oldest byte in the fifo had no stop bit
	LineBreak                                 // break condition on the line
	LineTxHoldingEmpty                        // transmitter accepts another byte
	LineTxEmpty                               // transmitter and shift register idle
	LineFifoError                             // some byte in the fifo has an error
)

// LineErrors are the latched error bits, cleared by writing them back.
const LineErrors = LineOverrunError | LineParityError | LineFramingError |
	LineBreak | LineFifoError

// DataReady reports whether at least one received byte is readable.
func (s LineStatus) DataReady() bool { return s&LineDataReady != 0 }

// TxHoldingEmpty reports whether the transmitter accepts another byte.
func (s LineStatus) TxHoldingEmpty() bool { return s&LineTxHoldingEmpty != 0 }

// TxEmpty reports whether the transmitter including its shift register is
// idle.
func (s LineStatus) TxEmpty() bool { return s&LineTxEmpty != 0 }

// Err reports whether any error bit is latched.
func (s LineStatus) Err() bool { return s&LineErrors != 0 }

var lineNames = []string{
	"DataReady", "Overrun", "ParityError", "FramingError", "Break",
	"TxHoldingEmpty", "TxEmpty", "FifoError",
}

func (s LineStatus) String() string { return bitString(uint32(s), lineNames) }

// ModemStatus is the state of the modem input lines.  The delta bits latch
// changes since the last read and are cleared by the read itself.
type ModemStatus uint32

const (
	ModemDeltaCTS ModemStatus = 1 << iota // CTS changed
	ModemDeltaDSR                         // DSR changed
	ModemTrailingRI                       // RI went inactive
	ModemDeltaDCD                         // DCD changed
	ModemCTS                              // clear to send
	ModemDSR                              // data set ready
	ModemRI                               // ring indicator
	ModemDCD                              // data carrier detect
)

// ModemDeltas are the change bits cleared by reading the register.
const ModemDeltas = ModemDeltaCTS | ModemDeltaDSR | ModemTrailingRI | ModemDeltaDCD

func (s ModemStatus) CTS() bool { return s&ModemCTS != 0 }
func (s ModemStatus) DSR() bool { return s&ModemDSR != 0 }
func (s ModemStatus) RI() bool  { return s&ModemRI != 0 }
func (s ModemStatus) DCD() bool { return s&ModemDCD != 0 }

var modemNames = []string{
	"DeltaCTS", "DeltaDSR", "TrailingRI", "DeltaDCD",
	"CTS", "DSR", "RI", "DCD",
}

func (s ModemStatus) String() string { return bitString(uint32(s), modemNames) }

// DMAStatus is the state of the DMA request enables, matching the dma
// control register.
type DMAStatus uint32

const (
	DMARxEnabled DMAStatus = 1 << iota // rx request line asserted on data
	DMATxEnabled                       // tx request line asserted on space
	DMAOnError                         // rx requests masked while errors are latched
)

var dmaNames = []string{"RxEnabled", "TxEnabled", "OnError"}

func (s DMAStatus) String() string { return bitString(uint32(s), dmaNames) }
