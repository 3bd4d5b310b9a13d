package serial

import "fmt"

// DataBits is the number of data bits per frame.
type DataBits uint8

const (
	DataBits5 DataBits = 5
	DataBits6 DataBits = 6
	DataBits7 DataBits = 7
	DataBits8 DataBits = 8
)

// StopBits is the number of stop bits per frame.
type StopBits uint8

const (
	StopBits1 StopBits = 1
	StopBits2 StopBits = 2
)

// Parity is the parity generation and checking mode.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
	ParityMark  // parity bit always 1
	ParitySpace // parity bit always 0
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "N"
	case ParityEven:
		return "E"
	case ParityOdd:
		return "O"
	case ParityMark:
		return "M"
	case ParitySpace:
		return "S"
	}
	return "?"
}

// PowerMode is the controller's power state.  PowerLowPower enables the IrDA
// low power counter, trading baudrate for power draw.
type PowerMode uint8

const (
	PowerNormal PowerMode = iota
	PowerLowPower
	PowerOff
)

func (m PowerMode) String() string {
	switch m {
	case PowerNormal:
		return "normal"
	case PowerLowPower:
		return "low power"
	case PowerOff:
		return "off"
	}
	return "unknown"
}

// DMADirection selects which of the controller's DMA request lines an
// operation refers to.
type DMADirection uint8

const (
	DMATx DMADirection = iota
	DMARx
	DMABoth
)

// Config is a complete line configuration.  Apply it atomically with
// Port.Configure; partial updates go through the single field setters.
type Config struct {
	Baudrate uint32
	DataBits DataBits
	StopBits StopBits
	Parity   Parity
}

// DefaultConfig returns the ubiquitous 115200 8N1.
func DefaultConfig() Config {
	return Config{
		Baudrate: 115200,
		DataBits: DataBits8,
		StopBits: StopBits1,
		Parity:   ParityNone,
	}
}

// String formats the configuration in the usual short form, e.g.
// "115200 8N1".
func (c Config) String() string {
	return fmt.Sprintf("%d %d%v%d", c.Baudrate, c.DataBits, c.Parity, c.StopBits)
}
