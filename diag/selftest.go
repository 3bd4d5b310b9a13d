// Package diag contains self tests for serial ports.
package diag

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/sigurn/crc8"

	"github.com/drivercraft/some-serial"
)

// Loopbacker controls a controller's internal feedback path.
type Loopbacker interface {
	EnableLoopback()
	DisableLoopback()
	LoopbackEnabled() bool
}

var crcTable = crc8.MakeTable(crc8.CRC8_MAXIM)

// patterns covers the corner bytes and a realistic payload.
var patterns = [][]byte{
	{},
	{0x00}, {0x55}, {0x7f}, {0xaa}, {0xff},
	[]byte("The quick brown fox jumps over the lazy dog."),
}

// SelfTest sends a set of patterns through the controller's feedback path
// and verifies each comes back intact: byte for byte and via a CRC-8
// trailer that travels over the loop itself.  Payloads are chunked to half
// the fifo depth so the test never depends on receive backpressure.
//
// Progress is reported to w.  The previous loopback state is restored on
// return.
func SelfTest(p *serial.Port, lb Loopbacker, w io.Writer) error {
	restore := lb.LoopbackEnabled()
	lb.EnableLoopback()
	defer func() {
		if !restore {
			lb.DisableLoopback()
		}
	}()

	for _, tx := range patterns {
		if err := runPattern(p, tx); err != nil {
			fmt.Fprintf(w, "loopback %-2d bytes: %v\n", len(tx), err)
			return err
		}
		fmt.Fprintf(w, "loopback %-2d bytes: ok (crc %#02x)\n",
			len(tx), crc8.Checksum(tx, crcTable))
	}
	return nil
}

func runPattern(p *serial.Port, tx []byte) error {
	rx := make([]byte, 0, len(tx))
	for chunk := range slices.Chunk(tx, serial.FifoDepth/2) {
		if _, err := p.Write(chunk); err != nil {
			return fmt.Errorf("send: %w", err)
		}
		for range chunk {
			b, err := p.ReadByte()
			if err != nil {
				return fmt.Errorf("recv after %d bytes: %w", len(rx), err)
			}
			rx = append(rx, b)
		}
	}

	// The checksum takes the loop too, so a mangled trailer fails as well.
	if err := p.WriteByte(crc8.Checksum(tx, crcTable)); err != nil {
		return fmt.Errorf("send crc: %w", err)
	}
	sum, err := p.ReadByte()
	if err != nil {
		return fmt.Errorf("recv crc: %w", err)
	}

	if !bytes.Equal(rx, tx) {
		return fmt.Errorf("payload mismatch: sent %q, got %q", tx, rx)
	}
	if want := crc8.Checksum(rx, crcTable); sum != want {
		return fmt.Errorf("checksum mismatch: got %#02x, want %#02x", sum, want)
	}
	return nil
}
