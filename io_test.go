package serial_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/drivercraft/some-serial"
	"github.com/drivercraft/some-serial/sertest"
)

const phrase = "The quick brown fox jumps over the lazy dog."

// loopPort returns an opened port with the feedback path on, so every
// transmitted byte comes back on the receive side.
func loopPort(t *testing.T) (*serial.Port, *sertest.Backing) {
	t.Helper()
	p, b := openPort(t)
	b.EnableLoopback()
	return p, b
}

func TestLoopbackSingleBytes(t *testing.T) {
	p, _ := loopPort(t)
	for _, c := range []byte{0x00, 0x55, 0x7f, 0xaa, 0xff} {
		if err := p.WriteByte(c); err != nil {
			t.Fatalf("write %#02x: %v", c, err)
		}
		got, err := p.ReadByte()
		if err != nil {
			t.Fatalf("read back %#02x: %v", c, err)
		}
		if got != c {
			t.Errorf("got %#02x, want %#02x", got, c)
		}
	}
}

func TestLoopbackInterleaved(t *testing.T) {
	p, _ := loopPort(t)
	var back bytes.Buffer
	for i := 0; i < len(phrase); i++ {
		if err := p.WriteByte(phrase[i]); err != nil {
			t.Fatal(err)
		}
		c, err := p.ReadByte()
		if err != nil {
			t.Fatal(err)
		}
		back.WriteByte(c)
	}
	if got := back.String(); got != phrase {
		t.Errorf("got %q, want %q", got, phrase)
	}
}

func TestLoopbackBulk(t *testing.T) {
	p, _ := loopPort(t)
	msg := []byte(phrase)[:serial.FifoDepth]

	n, err := p.Write(msg)
	if err != nil || n != len(msg) {
		t.Fatalf("Write: %d, %v", n, err)
	}

	buf := make([]byte, 2*len(msg))
	n, err = p.Read(buf)
	if err != nil || n != len(msg) {
		t.Fatalf("Read: %d, %v", n, err)
	}
	if !bytes.Equal(buf[:n], msg) {
		t.Errorf("got %q, want %q", buf[:n], msg)
	}

	// Fifo is drained now, the next Read must not block.
	if n, err = p.Read(buf); n != 0 || err != nil {
		t.Errorf("idle Read: got %d, %v, want 0, nil", n, err)
	}
}

func TestWriteString(t *testing.T) {
	p, _ := loopPort(t)
	n, err := p.WriteString("hi\r\n")
	if err != nil || n != 4 {
		t.Fatalf("WriteString: %d, %v", n, err)
	}
	buf := make([]byte, 8)
	if n, _ = p.Read(buf); string(buf[:n]) != "hi\r\n" {
		t.Errorf("got %q", buf[:n])
	}
}

func TestReadIdle(t *testing.T) {
	p, _ := openPort(t)
	if p.CanRead() {
		t.Fatal("CanRead on an idle port")
	}
	var buf [4]byte
	if n, err := p.Read(buf[:]); n != 0 || err != nil {
		t.Errorf("got %d, %v, want 0, nil", n, err)
	}
}

func TestReadByteTimeout(t *testing.T) {
	p, b := openPort(t) // loopback off, nothing will arrive
	if err := p.WriteByte('x'); err != nil {
		t.Fatal(err)
	}
	if got := b.Sent(); !bytes.Equal(got, []byte{'x'}) {
		t.Fatalf("line transcript %q, want \"x\"", got)
	}
	if _, err := p.ReadByte(); !errors.Is(err, serial.ErrTimeout) {
		t.Errorf("got %v, want ErrTimeout", err)
	}
}

func TestWriteByteTimeout(t *testing.T) {
	p, b := openPort(t)
	b.DrainReads = 1 << 20 // transmitter never ready
	n, err := p.Write([]byte("abc"))
	if !errors.Is(err, serial.ErrTimeout) {
		t.Errorf("got %v, want ErrTimeout", err)
	}
	if n != 0 {
		t.Errorf("claimed %d bytes written", n)
	}
}

// TestOverrun loses a byte to a full fifo and checks that the next read
// reports the loss exactly once, alongside valid data.
func TestOverrun(t *testing.T) {
	p, _ := loopPort(t)

	for i := 0; i <= serial.FifoDepth; i++ { // one more than fits
		if err := p.WriteByte(byte(i)); err != nil {
			t.Fatal(err)
		}
	}

	got, err := p.ReadByte()
	if !errors.Is(err, serial.ErrBufferOverflow) {
		t.Fatalf("got %v, want ErrBufferOverflow", err)
	}
	if got != 0 {
		t.Errorf("byte alongside the overrun: got %#x, want 0", got)
	}

	// The latch is cleared, the surviving bytes read back clean.
	for i := 1; i < serial.FifoDepth; i++ {
		got, err = p.ReadByte()
		if err != nil {
			t.Fatalf("byte %d: %v", i, err)
		}
		if got != byte(i) {
			t.Errorf("byte %d: got %#x", i, got)
		}
	}
	if p.CanRead() {
		t.Error("bytes beyond the fifo depth survived")
	}
}

func TestCanWrite(t *testing.T) {
	p, b := openPort(t)
	if !p.CanWrite() {
		t.Error("CanWrite on an idle transmitter")
	}
	b.DrainReads = 1
	if p.CanWrite() {
		t.Error("CanWrite while the transmitter is busy")
	}
}

// Port is used as a plain io.Reader/io.Writer pair by the console layer;
// keep the interfaces satisfied.
var (
	_ io.Reader = (*serial.Port)(nil)
	_ io.Writer = (*serial.Port)(nil)
)
