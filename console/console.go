//go:build noos

// Package console installs a serial port as the system console.
package console

import (
	"embedded/rtos"
	"io"
	"os"
	"syscall"

	"github.com/embeddedgo/fs/termfs"

	"github.com/drivercraft/some-serial"
)

// Mount presents port as /dev/console and redirects os.Stdout and
// os.Stderr to it, so fmt, log and runtime output leave through the UART.
// aux, if non-nil, receives a copy of everything written.
//
// The port should be opened and configured before mounting.  Console writes
// are polled and block the writer; a slow baudrate makes for a slow
// program.
func Mount(port *serial.Port, aux io.Writer) error {
	w := io.Writer(port)
	if aux != nil {
		w = io.MultiWriter(port, aux)
	}

	fs := termfs.NewLight("console", nil, w)
	rtos.Mount(fs, "/dev/console")

	var err error
	os.Stdout, err = os.OpenFile("/dev/console", syscall.O_WRONLY, 0)
	if err != nil {
		return err
	}
	os.Stderr = os.Stdout
	return nil
}
