package nes

import "image"

// Bus owns every device in the system and routes all memory traffic
// between them. It also drives the global clock: the picture unit ticks on
// every bus clock, the processor on every third.
type Bus struct {
	cpu  *CPU
	ppu  *PPU
	ram  *RAM
	cart *Cart

	clockCounter uint64
	paused       bool
}

func NewBus() *Bus {
	return &Bus{
		cpu: NewCPU(),
		ppu: NewPPU(),
		ram: NewRAM(),
	}
}

// InsertCartridge attaches the cartridge to the processor side of the bus
// and to the picture unit. An invalid cartridge is ignored.
func (b *Bus) InsertCartridge(cart *Cart) {
	if !cart.Valid() {
		return
	}
	b.cart = cart
	b.ppu.ConnectCartridge(cart)
}

func (b *Bus) Reset() {
	b.cpu.Reset(b)
	b.ppu.Reset()
	b.clockCounter = 0
}

// Clock advances the whole system by one bus cycle. The picture unit always
// runs first so the processor observes exactly three picture-unit ticks
// between its own.
func (b *Bus) Clock() {
	b.ppu.Clock()
	if b.clockCounter%3 == 0 {
		b.cpu.Clock(b)
	}
	b.clockCounter++
}

// Read8 routes a processor-side read. Unmapped addresses read as 0.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	// internal RAM, mirrored every 2 KB
	case addr < 0x2000:
		return b.ram.Read8(addr & 0x07ff)
	// picture unit ports, mirrored every 8 bytes
	case addr < 0x4000:
		return b.ppu.ReadRegister(addr & 0x0007)
	// APU and IO, not wired in this scope
	case addr < 0x4020:
		return 0
	default:
		if b.cart.Valid() {
			if data, ok := b.cart.CPURead8(addr); ok {
				return data
			}
		}
		return 0
	}
}

// Peek8 is Read8 without side effects.
func (b *Bus) Peek8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram.Read8(addr & 0x07ff)
	case addr < 0x4000:
		return b.ppu.PeekRegister(addr & 0x0007)
	case addr < 0x4020:
		return 0
	default:
		if b.cart.Valid() {
			if data, ok := b.cart.CPURead8(addr); ok {
				return data
			}
		}
		return 0
	}
}

// Write8 routes a processor-side write. Writes to unmapped addresses are
// discarded.
func (b *Bus) Write8(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		b.ram.Write8(addr&0x07ff, data)
	case addr < 0x4000:
		b.ppu.WriteRegister(addr&0x0007, data)
	case addr < 0x4020:
	default:
		if b.cart.Valid() {
			b.cart.CPUWrite8(addr, data)
		}
	}
}

// IRQ forwards a maskable interrupt request to the processor.
func (b *Bus) IRQ() {
	b.cpu.IRQ(b)
}

// NMI forwards a non-maskable interrupt request to the processor.
func (b *Bus) NMI() {
	b.cpu.NMI(b)
}

func (b *Bus) TogglePause() {
	b.paused = !b.paused
}

func (b *Bus) Paused() bool {
	return b.paused
}

// StepInstruction clocks the system until the processor has executed at
// least one cycle and sits on an instruction boundary again.
func (b *Bus) StepInstruction() {
	start := b.cpu.totalCycles
	for b.cpu.totalCycles == start || !b.cpu.Complete() {
		b.Clock()
	}
}

// StepFrame clocks the system until the picture unit signals frame
// completion, then clears the flag.
func (b *Bus) StepFrame() {
	for !b.ppu.FrameComplete() {
		b.Clock()
	}
	b.ppu.ClearFrameComplete()
}

// DebugInfo snapshots the processor state for external tooling.
func (b *Bus) DebugInfo() CPUState {
	return b.cpu.State()
}

// Disassemble renders the whole processor-visible address space.
func (b *Bus) Disassemble() map[uint16]string {
	return Disassemble(b)
}

// Screen returns the picture unit's framebuffer.
func (b *Bus) Screen() image.Image {
	return b.ppu.Screen()
}
