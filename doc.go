// Package serial implements a layered driver for memory mapped UART
// controllers of the PL011/16550 family.
//
// The package splits the driver in two layers.  A controller implements the
// small primitive contracts RegisterAccess (raw access to the canonical
// 16550 register window) and BaudrateSupport (clock aware divisor
// arithmetic); both together form a Chip.  Port derives the complete serial
// control surface from a Chip: line configuration, byte I/O, fifo
// management, interrupt masking, modem lines, DMA request enables and power
// modes.  Package pl011 provides the Chip for PL011 compatible controllers;
// package sertest provides a simulated one for tests.
//
// All blocking operations are bounded polls with explicit timeouts.  The
// package takes no interrupts, starts no goroutines and does not allocate
// on I/O paths.  A Port does not serialize callers; treat it like any other
// single owner device.
package serial
