package serial_test

import (
	"errors"
	"testing"

	"github.com/drivercraft/some-serial"
)

// TestDMAUnwired drives the dma operations against a controller whose dma
// block reads as zero and ignores writes.
func TestDMAUnwired(t *testing.T) {
	p, _ := openPort(t)

	if err := p.EnableDMA(serial.DMARx); !errors.Is(err, serial.ErrDMA) {
		t.Errorf("EnableDMA: got %v, want ErrDMA", err)
	}
	if err := p.DisableDMA(serial.DMABoth); !errors.Is(err, serial.ErrDMA) {
		t.Errorf("DisableDMA: got %v, want ErrDMA", err)
	}
	if got := p.DMAStatus(); got != 0 {
		t.Errorf("DMAStatus: got %v, want none", got)
	}

	// Even raw writes bounce off.
	p.WriteReg(serial.RegDMACtrl, 0x07)
	if got := p.ReadReg(serial.RegDMACtrl); got != 0 {
		t.Errorf("DMACR: got %#x, want 0", got)
	}
}

func TestDMADirections(t *testing.T) {
	p, b := openPort(t)
	b.DMAWired = true

	if err := p.EnableDMA(serial.DMARx); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != serial.DMARxEnabled {
		t.Errorf("got %v, want RxEnabled", got)
	}

	if err := p.EnableDMA(serial.DMATx); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != serial.DMARxEnabled|serial.DMATxEnabled {
		t.Errorf("got %v, want both", got)
	}

	if err := p.DisableDMA(serial.DMARx); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != serial.DMATxEnabled {
		t.Errorf("got %v, want TxEnabled", got)
	}

	if err := p.DisableDMA(serial.DMABoth); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != 0 {
		t.Errorf("got %v, want none", got)
	}

	if err := p.EnableDMA(serial.DMABoth); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != serial.DMARxEnabled|serial.DMATxEnabled {
		t.Errorf("got %v, want both", got)
	}
}

// TestDMAProbeRestores checks that the wiring probe puts the on-error bit
// back the way it found it, in both states.
func TestDMAProbeRestores(t *testing.T) {
	p, b := openPort(t)
	b.DMAWired = true

	if err := p.EnableDMA(serial.DMARx); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got&serial.DMAOnError != 0 {
		t.Errorf("probe left the on-error bit set: %v", got)
	}

	p.WriteReg(serial.RegDMACtrl, uint32(serial.DMAOnError))
	if err := p.EnableDMA(serial.DMATx); err != nil {
		t.Fatal(err)
	}
	if got := p.DMAStatus(); got != serial.DMATxEnabled|serial.DMAOnError {
		t.Errorf("got %v, want TxEnabled + OnError", got)
	}
}
