package nes

import "strings"

const stackStartAddr = uint16(0x0100)

// Status register flags.
const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused
	flagV                    // Overflow
	flagN                    // Negative
)

// Fixed interrupt vectors.
const (
	vectorNMI   = uint16(0xfffa)
	vectorReset = uint16(0xfffc)
	vectorIRQ   = uint16(0xfffe)
)

// CPU is an emulation of the 6502/2A03 processor. It holds no reference to
// the bus it lives on: the owner passes its memory port into every entry
// point instead.
type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	// transient per-instruction state
	opcode      uint8
	mode        addrMode
	operandAddr uint16

	cycles      uint8  // cycles left for the in-flight instruction
	totalCycles uint64 // diagnostics only
}

func NewCPU() *CPU {
	return &CPU{}
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func (c *CPU) read16(mem ReadWriter, addr uint16) uint16 {
	return uint16(mem.Read8(addr)) | uint16(mem.Read8(addr+1))<<8
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&0x80 > 0)
}

func (c *CPU) stackPush8(mem ReadWriter, data uint8) {
	mem.Write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(mem ReadWriter, data uint16) {
	c.stackPush8(mem, uint8(data>>8))
	c.stackPush8(mem, uint8(data&0xff))
}

func (c *CPU) stackPop8(mem ReadWriter) uint8 {
	c.sp++
	return mem.Read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16(mem ReadWriter) uint16 {
	lo := uint16(c.stackPop8(mem))
	hi := uint16(c.stackPop8(mem))
	return lo | hi<<8
}

// Reset forces the CPU into its power-on state. Only the two reset vector
// bytes are read; nothing is written.
func (c *CPU) Reset(mem ReadWriter) {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0xfd
	c.p = flagU | flagI
	c.pc = c.read16(mem, vectorReset)

	c.opcode = 0
	c.mode = 0
	c.operandAddr = 0

	c.cycles = 8
	c.totalCycles = 0
}

// IRQ services a maskable interrupt request. It is a no-op while the
// Interrupt Disable flag is set.
func (c *CPU) IRQ(mem ReadWriter) {
	if c.getFlag(flagI) {
		return
	}

	c.stackPush16(mem, c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU|flagI, true)
	c.stackPush8(mem, c.p)
	c.pc = c.read16(mem, vectorIRQ)
	c.cycles = 7
}

// NMI services a non-maskable interrupt request. Same push sequence as IRQ
// but unconditional and vectored through $FFFA.
func (c *CPU) NMI(mem ReadWriter) {
	c.stackPush16(mem, c.pc)
	c.setFlag(flagB, false)
	c.setFlag(flagU|flagI, true)
	c.stackPush8(mem, c.p)
	c.pc = c.read16(mem, vectorNMI)
	c.cycles = 8
}

// Clock advances the CPU by one cycle and returns the number of cycles left
// for the current instruction, so a caller can detect instruction
// boundaries. A new opcode is fetched only when the countdown has drained;
// the extra page-cross cycle is charged when both the addressing mode and
// the operation signal it.
func (c *CPU) Clock(mem ReadWriter) uint8 {
	if c.cycles == 0 {
		c.opcode = mem.Read8(c.pc)
		c.pc++

		instr := optable[c.opcode]
		c.mode = instr.mode
		modeExtra := c.resolve(mem, instr.mode)
		opExtra := c.execute(mem, instr.op)
		c.cycles += instr.cycles + modeExtra&opExtra
	}

	c.cycles--
	c.totalCycles++
	return c.cycles
}

// Complete reports whether the CPU sits on an instruction boundary.
func (c *CPU) Complete() bool {
	return c.cycles == 0
}

// CPUState is a snapshot of the externally visible register file.
type CPUState struct {
	A, X, Y, SP, P uint8
	PC             uint16
	TotalCycles    uint64
}

func (c *CPU) State() CPUState {
	return CPUState{
		A: c.a, X: c.x, Y: c.y, SP: c.sp, P: c.p,
		PC:          c.pc,
		TotalCycles: c.totalCycles,
	}
}

func (s CPUState) StatusString() string {
	flags := []struct {
		mask uint8
		name byte
	}{
		{flagN, 'N'}, {flagV, 'V'}, {flagU, 'U'}, {flagB, 'B'},
		{flagD, 'D'}, {flagI, 'I'}, {flagZ, 'Z'}, {flagC, 'C'},
	}

	var sb strings.Builder
	for _, f := range flags {
		if s.P&f.mask > 0 {
			sb.WriteByte(f.name)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
