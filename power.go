package serial

// PowerMode derives the current power state from the control register.
func (p *Port) PowerMode() PowerMode {
	cr := p.hw.ReadRegSync(RegControl)
	switch {
	case cr&CtrlUARTEnable == 0:
		return PowerOff
	case cr&CtrlLowPower != 0:
		return PowerLowPower
	}
	return PowerNormal
}

// SetPowerMode switches between normal operation, the low power mode and
// off.  The hardware can't switch between off and low power directly, such
// requests return ErrPowerMode; go through PowerNormal.  Requesting the
// current mode is a no-op.
//
// PowerOff gates the whole controller; the transmitter stops mid frame.
// Drain with Close or TxEmpty first if that matters.
func (p *Port) SetPowerMode(mode PowerMode) error {
	cur := p.PowerMode()
	if cur == mode {
		return nil
	}
	if cur == PowerOff && mode == PowerLowPower ||
		cur == PowerLowPower && mode == PowerOff {
		return ErrPowerMode
	}
	switch mode {
	case PowerNormal:
		p.hw.ClearRegBits(RegControl, CtrlLowPower)
		p.hw.SetRegBits(RegControl, CtrlUARTEnable)
	case PowerLowPower:
		p.hw.SetRegBits(RegControl, CtrlUARTEnable|CtrlLowPower)
	case PowerOff:
		p.hw.ClearRegBits(RegControl, CtrlUARTEnable|CtrlLowPower)
	default:
		return ErrPowerMode
	}
	return nil
}
