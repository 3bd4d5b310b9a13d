package serial

func dmaBits(dir DMADirection) uint32 {
	switch dir {
	case DMATx:
		return uint32(DMATxEnabled)
	case DMARx:
		return uint32(DMARxEnabled)
	}
	return uint32(DMATxEnabled | DMARxEnabled)
}

// dmaWired probes the dma control register.  Controllers without dma wiring
// implement it as read-as-zero, write-ignored; toggling the on-error bit
// detects that without asserting any request line.
func (p *Port) dmaWired() bool {
	saved := p.hw.ReadRegSync(RegDMACtrl)
	p.hw.SetRegBits(RegDMACtrl, uint32(DMAOnError))
	wired := p.hw.IsRegBitSet(RegDMACtrl, uint32(DMAOnError))
	p.hw.WriteRegSync(RegDMACtrl, saved)
	return wired
}

// EnableDMA asserts the controller's dma request enables for dir.  The
// transfers themselves are the dma engine's business, not the port's.
// Controllers without dma wiring fail with ErrDMA before any request
// enable is touched.
func (p *Port) EnableDMA(dir DMADirection) error {
	if !p.dmaWired() {
		return ErrDMA
	}
	p.hw.SetRegBits(RegDMACtrl, dmaBits(dir))
	return nil
}

// DisableDMA deasserts the request enables for dir.  Fails with ErrDMA on
// controllers without dma wiring.
func (p *Port) DisableDMA(dir DMADirection) error {
	if !p.dmaWired() {
		return ErrDMA
	}
	p.hw.ClearRegBits(RegDMACtrl, dmaBits(dir))
	return nil
}

// DMAStatus reads the dma control register back.
func (p *Port) DMAStatus() DMAStatus {
	return DMAStatus(p.hw.ReadRegSync(RegDMACtrl))
}
