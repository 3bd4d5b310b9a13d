package serial_test

import (
	"errors"
	"testing"

	"github.com/drivercraft/some-serial"
	"github.com/drivercraft/some-serial/sertest"
)

func TestMakeDivisorKnownValues(t *testing.T) {
	for _, tc := range []struct {
		name        string
		clock, baud uint32
		want        serial.Divisor
	}{
		{"24MHz 115200", 24_000_000, 115200, serial.Divisor{Integer: 13, Fraction: 1}},
		{"24MHz 9600", 24_000_000, 9600, serial.Divisor{Integer: 156, Fraction: 16}},
		{"1.8432MHz 9600", 1_843_200, 9600, serial.Divisor{Integer: 12, Fraction: 0}},
		// 47.9/16.0 = 2.99375, the fraction rounds to 64/64 and must
		// carry into the integer part.
		{"carry 47.9MHz 1MBd", 47_900_000, 1_000_000, serial.Divisor{Integer: 3, Fraction: 0}},
		// Extremes of the divisor range.
		{"fastest 24MHz 1.5MBd", 24_000_000, 1_500_000, serial.Divisor{Integer: 1, Fraction: 0}},
		{"slowest 100MHz 96Bd", 100_000_000, 96, serial.Divisor{Integer: 65104, Fraction: 11}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := serial.MakeDivisor(tc.clock, tc.baud)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMakeDivisorOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		name        string
		clock, baud uint32
	}{
		{"zero baud", 24_000_000, 0},
		{"above clock/16", 24_000_000, 2_000_000},
		{"way above clock", 1_843_200, 921600},
		{"below clock/16/65536", 100_000_000, 95},
		{"absurdly slow", 24_000_000, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := serial.MakeDivisor(tc.clock, tc.baud); !errors.Is(err, serial.ErrInvalidBaudrate) {
				t.Errorf("got %v, want ErrInvalidBaudrate", err)
			}
		})
	}
}

// TestDivisorRoundTrip checks that every reachable standard rate is
// recovered within the 1/64 fractional step, and that unreachable rates
// error instead of wrapping.
func TestDivisorRoundTrip(t *testing.T) {
	clocks := []uint32{1_843_200, 24_000_000, 48_000_000, 100_000_000}
	rates := []uint32{
		110, 300, 600, 1200, 2400, 4800, 9600, 19200, 38400, 57600,
		115200, 230400, 460800, 921600,
	}
	for _, clock := range clocks {
		for _, baud := range rates {
			div, err := serial.MakeDivisor(clock, baud)
			reachable := 16*uint64(baud) <= uint64(clock) &&
				uint64(clock)/(16*uint64(baud)) <= 0xfffe
			if !reachable {
				if !errors.Is(err, serial.ErrInvalidBaudrate) {
					t.Errorf("clock %d baud %d: got %v, want ErrInvalidBaudrate",
						clock, baud, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("clock %d baud %d: %v", clock, baud, err)
				continue
			}
			back := div.Baudrate(clock)
			diff := int64(back) - int64(baud)
			if diff < 0 {
				diff = -diff
			}
			if diff > int64(baud)/64+1 {
				t.Errorf("clock %d baud %d: recovered %d, off by %d",
					clock, baud, back, diff)
			}
		}
	}
}

func TestDivisorBaudrateZero(t *testing.T) {
	if got := (serial.Divisor{}).Baudrate(24_000_000); got != 0 {
		t.Errorf("zero divisor: got %d, want 0", got)
	}
}

func TestStoreLoadDivisor(t *testing.T) {
	b := sertest.NewBacking()

	div, err := b.BaudrateDivisor(115200)
	if err != nil {
		t.Fatal(err)
	}
	b.StoreDivisor(div)
	if got := b.LoadDivisor(); got != div {
		t.Errorf("got %+v, want %+v", got, div)
	}
	if got := b.DivisorBaudrate(div); got != 115246 {
		t.Errorf("effective rate: got %d, want 115246", got)
	}

	// The fraction register is 6 bits wide, stray upper bits must not
	// survive a readback.
	b.WriteReg(serial.RegDivisorFrac, 0xff)
	if got := b.LoadDivisor().Fraction; got != 0x3f {
		t.Errorf("fraction: got %#x, want 0x3f", got)
	}
}
