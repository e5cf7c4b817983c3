package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_RAMMirroring(t *testing.T) {
	bus := NewBus()

	bus.Write8(0x0000, 0x11)
	assert.Equal(t, uint8(0x11), bus.Read8(0x0800))
	assert.Equal(t, uint8(0x11), bus.Read8(0x1000))
	assert.Equal(t, uint8(0x11), bus.Read8(0x1800))

	// writes through a mirror land in the same backing cell
	bus.Write8(0x1fff, 0x22)
	assert.Equal(t, uint8(0x22), bus.Read8(0x07ff))
}

func TestBus_PPURegisterMirroring(t *testing.T) {
	bus := NewBus()

	bus.Write8(0x2000, 0x55)
	for addr := uint16(0x2000); addr < 0x4000; addr += 8 {
		assert.Equalf(t, uint8(0x55), bus.Peek8(addr), "mirror at %04X", addr)
	}
}

func TestBus_UnmappedReads(t *testing.T) {
	bus := NewBus()

	// no cartridge inserted: APU range and cartridge range read as open bus
	assert.Equal(t, uint8(0), bus.Read8(0x4000))
	assert.Equal(t, uint8(0), bus.Read8(0x401f))
	assert.Equal(t, uint8(0), bus.Read8(0x5000))
	assert.Equal(t, uint8(0), bus.Read8(0x8000))

	// writes there are discarded without panicking
	bus.Write8(0x4017, 0xff)
	bus.Write8(0x8000, 0xff)
}

func TestBus_ClockRatio(t *testing.T) {
	bus := NewBus()
	bus.Reset()

	// the processor ticks on bus clocks 0, 3 and 6
	for i := 0; i < 9; i++ {
		bus.Clock()
	}

	assert.Equal(t, uint64(3), bus.cpu.totalCycles, "CPU cycles")
	assert.Equal(t, uint64(9), bus.clockCounter, "bus clocks")
}

func TestBus_StepInstruction(t *testing.T) {
	bus := NewBus()
	bus.Reset()

	bus.StepInstruction()

	// the reset busy time counts as the first "instruction"
	assert.True(t, bus.cpu.Complete())
	assert.Equal(t, uint64(8), bus.cpu.totalCycles, "CPU cycles")

	before := bus.cpu.totalCycles
	bus.StepInstruction()
	assert.True(t, bus.cpu.Complete())
	assert.Greater(t, bus.cpu.totalCycles, before)
}

func TestBus_StepFrame(t *testing.T) {
	bus := NewBus()
	bus.Reset()

	bus.StepFrame()

	assert.Equal(t, uint64(1), bus.ppu.frame, "frame counter")
	assert.False(t, bus.ppu.FrameComplete(), "flag cleared after the step")
	assert.Equal(t, uint64(cyclesPerScanline*scanlinesPerFrame), bus.clockCounter, "bus clocks per frame")
}

func TestBus_CartridgeRouting(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	assert.NoError(t, err)

	bus := NewBus()
	bus.InsertCartridge(cart)

	cart.prgMem[0x0123] = 0xab
	assert.Equal(t, uint8(0xab), bus.Read8(0x8123))
	// single bank mirrors into the upper half
	assert.Equal(t, uint8(0xab), bus.Read8(0xc123))
}

func TestBus_TogglePause(t *testing.T) {
	bus := NewBus()
	assert.False(t, bus.Paused())
	bus.TogglePause()
	assert.True(t, bus.Paused())
	bus.TogglePause()
	assert.False(t, bus.Paused())
}

func TestBus_ResetVectorThroughCartridge(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	assert.NoError(t, err)

	// reset vector lives at the top of the mirrored bank
	cart.prgMem[0x3ffc] = 0x34
	cart.prgMem[0x3ffd] = 0x12

	bus := NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()

	assert.Equal(t, uint16(0x1234), bus.cpu.pc, "PC")
}
