package serial

// fifoLevels are the trigger levels the hardware can express, indexed by
// the level select code: eighths 1/8, 1/4, 1/2, 3/4 and 7/8 of the 16 byte
// fifos.
var fifoLevels = [...]int{2, 4, 8, 12, 14}

const fifoLevelRxShift = 3

func fifoLevelCode(bytes int) (uint32, bool) {
	for code, lvl := range fifoLevels {
		if lvl == bytes {
			return uint32(code), true
		}
	}
	return 0, false
}

// EnableFifo switches both fifos on or off.  Switching resets them; the
// trigger levels keep their setting.
func (p *Port) EnableFifo(on bool) {
	if on {
		p.hw.WriteRegSync(RegIntrIdent, FifoEnable)
	} else {
		p.hw.WriteRegSync(RegIntrIdent, 0)
	}
}

// FifoEnabled reads the fifo state back from the ident register.
func (p *Port) FifoEnabled() bool {
	return p.hw.ReadRegSync(RegIntrIdent)&IdentFifoEnabled == IdentFifoEnabled
}

// SetFifoTriggerLevels selects at how many pending bytes the rx and tx
// interrupts fire.  Only the discrete levels 2, 4, 8, 12 and 14 bytes
// exist in hardware; anything else returns ErrFifoTrigger.
func (p *Port) SetFifoTriggerLevels(rx, tx int) error {
	rxCode, ok := fifoLevelCode(rx)
	if !ok {
		return ErrFifoTrigger
	}
	txCode, ok := fifoLevelCode(tx)
	if !ok {
		return ErrFifoTrigger
	}
	p.hw.WriteRegSync(RegFifoLevels, rxCode<<fifoLevelRxShift|txCode)
	return nil
}

// FifoTriggerLevels reads the trigger levels back, in bytes.  Reserved
// select codes report the deepest level.
func (p *Port) FifoTriggerLevels() (rx, tx int) {
	v := p.hw.ReadRegSync(RegFifoLevels)
	rxCode := min(int(v&FifoLevelRxMask)>>fifoLevelRxShift, len(fifoLevels)-1)
	txCode := min(int(v&FifoLevelTxMask), len(fifoLevels)-1)
	return fifoLevels[rxCode], fifoLevels[txCode]
}

// FlushRxFifo discards all received but unread bytes.
func (p *Port) FlushRxFifo() { p.flushFifo(FifoClearRx) }

// FlushTxFifo discards all queued but unsent bytes.
func (p *Port) FlushTxFifo() { p.flushFifo(FifoClearTx) }

// FlushFifos discards pending bytes in both directions.
func (p *Port) FlushFifos() { p.flushFifo(FifoClearRx | FifoClearTx) }

func (p *Port) flushFifo(clear uint32) {
	keep := uint32(0)
	if p.FifoEnabled() {
		keep = FifoEnable
	}
	p.hw.WriteRegSync(RegIntrIdent, keep|clear)
}
