package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	mem := &flatMem{}
	mem.load(0x8000,
		0xa9, 0x10, // LDA #$10
		0x8d, 0x00, 0x02, // STA $0200
		0xf0, 0xfe, // BEQ back onto itself
		0x0a, // ASL A
		0x00, // BRK
	)

	disasm := Disassemble(mem)

	assert.Equal(t, "$8000: LDA #$10 {IMM}", disasm[0x8000])
	assert.Equal(t, "$8002: STA $0200 {ABS}", disasm[0x8002])
	assert.Equal(t, "$8005: BEQ $8005 {REL}", disasm[0x8005])
	assert.Equal(t, "$8007: ASL A {ACC}", disasm[0x8007])
	assert.Equal(t, "$8008: BRK {IMP}", disasm[0x8008])

	// operand bytes are consumed, not decoded as instructions
	_, ok := disasm[0x8001]
	assert.False(t, ok)
	_, ok = disasm[0x8003]
	assert.False(t, ok)
}

func TestDisassemble_UsesPeeksOnly(t *testing.T) {
	// disassembling through the bus must not disturb registers with read
	// side effects
	bus := NewBus()
	bus.ppu.status = statusVerticalBlank

	bus.Disassemble()

	assert.Equal(t, statusVerticalBlank, bus.ppu.status)
}
