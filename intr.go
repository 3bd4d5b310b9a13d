package serial

// EnableInterrupts enables the given sources in addition to the already
// enabled ones.  The port never handles interrupts itself, it only
// maintains the enables for an external handler.
func (p *Port) EnableInterrupts(mask InterruptMask) {
	p.hw.SetRegBits(RegIntrEnable, uint32(mask&IntrAll))
}

// DisableInterrupts disables the given sources, leaving the others as they
// are.
func (p *Port) DisableInterrupts(mask InterruptMask) {
	p.hw.ClearRegBits(RegIntrEnable, uint32(mask&IntrAll))
}

// EnabledInterrupts reads the currently enabled sources back.
func (p *Port) EnabledInterrupts() InterruptMask {
	return InterruptMask(p.hw.ReadRegSync(RegIntrEnable)) & IntrAll
}

// InterruptStatus returns the latched pending sources.
func (p *Port) InterruptStatus() InterruptStatus {
	return InterruptStatus(p.hw.ReadRegSync(RegIntrStatus)) & InterruptStatus(IntrAll)
}

// ClearInterrupts acknowledges exactly the given latched sources, others
// stay pending.
func (p *Port) ClearInterrupts(status InterruptStatus) {
	p.hw.WriteRegSync(RegIntrClear, uint32(status))
}
