package serial

// ValidateConfig checks cfg against the line formats the family supports:
// nonzero baudrate, parity only with 6 or more data bits, and at most 10
// bit times per frame after the start bit.
func ValidateConfig(cfg Config) error {
	if cfg.Baudrate == 0 {
		return ErrInvalidConfig
	}
	if cfg.DataBits < DataBits5 || cfg.DataBits > DataBits8 {
		return ErrInvalidConfig
	}
	if cfg.StopBits != StopBits1 && cfg.StopBits != StopBits2 {
		return ErrInvalidConfig
	}
	if cfg.Parity > ParitySpace {
		return ErrInvalidConfig
	}
	parity := 0
	if cfg.Parity != ParityNone {
		if cfg.DataBits < DataBits6 {
			return ErrInvalidConfig
		}
		parity = 1
	}
	if int(cfg.DataBits)+int(cfg.StopBits)+parity > 10 {
		return ErrInvalidConfig
	}
	return nil
}

// standardBaudrates are the rates virtually every host side driver offers.
var standardBaudrates = [...]uint32{
	110, 300, 600, 1200, 2400, 4800, 9600, 19200, 38400, 57600,
	115200, 230400, 460800, 921600,
}

// ValidBaudrate reports whether baud is one of the standard rates.  Whether
// a controller's clock can actually produce a rate is a different question,
// answered by BaudrateSupport.BaudrateDivisor.
func ValidBaudrate(baud uint32) bool {
	for _, b := range standardBaudrates {
		if b == baud {
			return true
		}
	}
	return false
}

// RecommendedFifoTriggerLevel returns a trigger level for a fifo of the
// given depth: half the depth, snapped to the closest level the hardware
// can express.
func RecommendedFifoTriggerLevel(depth int) int {
	half := depth / 2
	best := fifoLevels[0]
	for _, lvl := range fifoLevels[1:] {
		if abs(lvl-half) < abs(best-half) {
			best = lvl
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
