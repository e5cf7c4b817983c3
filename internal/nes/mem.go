package nes

// ReadWriter is a port into an 8-bit addressable device.
//
// Peek8 must behave like Read8 but without side effects, so debug tooling
// can inspect memory without disturbing registers such as the picture unit
// status port.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Peek8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}
