package serial

// CanRead reports whether a received byte is readable right now.
func (p *Port) CanRead() bool {
	return p.hw.IsRegBitSet(RegLineStatus, uint32(LineDataReady))
}

// CanWrite reports whether the transmitter accepts a byte right now.
func (p *Port) CanWrite() bool {
	return p.hw.IsRegBitSet(RegLineStatus, uint32(LineTxHoldingEmpty))
}

// ReadByte waits bounded for a received byte.  If the receiver latched an
// overrun, the returned byte is still valid but some predecessor was lost;
// this is reported by returning the byte together with ErrBufferOverflow
// and clearing the latch.
func (p *Port) ReadByte() (byte, error) {
	if err := p.hw.WaitRegBitSet(RegLineStatus, uint32(LineDataReady), byteTimeout); err != nil {
		return 0, err
	}
	overrun := p.hw.IsRegBitSet(RegLineStatus, uint32(LineOverrunError))
	b := byte(p.hw.ReadReg(RegData))
	if overrun {
		p.hw.WriteRegSync(RegLineStatus, uint32(LineOverrunError))
		return b, ErrBufferOverflow
	}
	return b, nil
}

// WriteByte waits bounded for fifo space and sends b.
func (p *Port) WriteByte(b byte) error {
	if err := p.hw.WaitRegBitSet(RegLineStatus, uint32(LineTxHoldingEmpty), byteTimeout); err != nil {
		return err
	}
	p.hw.WriteReg(RegData, uint32(b))
	return nil
}

// Read implements io.Reader.  It drains the bytes already received and
// returns without blocking once the fifo runs empty; on an idle port it
// returns 0, nil.  Receive errors are not folded into Read, query
// LineStatus for them.
func (p *Port) Read(buf []byte) (n int, err error) {
	for n < len(buf) && p.CanRead() {
		buf[n] = byte(p.hw.ReadReg(RegData))
		n++
	}
	return n, nil
}

// Write implements io.Writer, sending all of buf with a bounded wait per
// byte.
func (p *Port) Write(buf []byte) (n int, err error) {
	for _, b := range buf {
		if err = p.WriteByte(b); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// WriteString sends s, like Write but without copying s to a byte slice.
func (p *Port) WriteString(s string) (n int, err error) {
	for i := 0; i < len(s); i++ {
		if err = p.WriteByte(s[i]); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
