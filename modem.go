package serial

// SetRTS drives the request-to-send output.
func (p *Port) SetRTS(on bool) { p.setModemCtrl(ModemCtrlRTS, on) }

// RTS reports the driven state of the request-to-send output.
func (p *Port) RTS() bool { return p.hw.IsRegBitSet(RegModemCtrl, ModemCtrlRTS) }

// SetDTR drives the data-terminal-ready output.
func (p *Port) SetDTR(on bool) { p.setModemCtrl(ModemCtrlDTR, on) }

// DTR reports the driven state of the data-terminal-ready output.
func (p *Port) DTR() bool { return p.hw.IsRegBitSet(RegModemCtrl, ModemCtrlDTR) }

func (p *Port) setModemCtrl(bit uint32, on bool) {
	if on {
		p.hw.SetRegBits(RegModemCtrl, bit)
	} else {
		p.hw.ClearRegBits(RegModemCtrl, bit)
	}
}

// ModemLines returns all modem status bits in one read.  The read clears
// the delta bits in hardware.
func (p *Port) ModemLines() ModemStatus {
	return ModemStatus(p.hw.ReadRegSync(RegModemStatus))
}

// CTS reports the clear-to-send input.  Like all modem status reads this
// clears the delta bits.
func (p *Port) CTS() bool { return p.ModemLines().CTS() }

// DSR reports the data-set-ready input.
func (p *Port) DSR() bool { return p.ModemLines().DSR() }

// RI reports the ring-indicator input.
func (p *Port) RI() bool { return p.ModemLines().RI() }

// DCD reports the data-carrier-detect input.
func (p *Port) DCD() bool { return p.ModemLines().DCD() }
