package serial

import "errors"

var (
	ErrTimeout         = errors.New("timeout")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrInvalidBaudrate = errors.New("invalid baudrate")
	ErrFifoTrigger     = errors.New("invalid fifo trigger level")
	ErrDMA             = errors.New("dma not wired")
	ErrPowerMode       = errors.New("unsupported power transition")
	ErrBufferOverflow  = errors.New("rx overrun")
	ErrNoDevice        = errors.New("no device")
)
