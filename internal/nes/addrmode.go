package nes

type addrMode uint8

const (
	addrModeIMP  addrMode = iota + 1 // Implied
	addrModeACC                      // Accumulator
	addrModeIMM                      // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeREL                      // Relative
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMP:
		return "IMP"
	case addrModeACC:
		return "ACC"
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeREL:
		return "REL"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	}
	return "???"
}

// operandBytes is the number of instruction bytes the mode consumes
// after the opcode itself.
func (mode addrMode) operandBytes() uint16 {
	switch mode {
	case addrModeIMP, addrModeACC:
		return 0
	case addrModeABS, addrModeABSX, addrModeABSY, addrModeIND:
		return 2
	default:
		return 1
	}
}

// resolve computes the operand address for the current instruction and
// advances PC past the operand bytes. The return value is 1 when the mode
// may contribute a page-cross penalty and the addition actually crossed
// a page, else 0. The penalty is only charged when the operation cares,
// see Clock.
func (c *CPU) resolve(mem ReadWriter, mode addrMode) uint8 {
	c.operandAddr = 0

	switch mode {
	case addrModeIMP, addrModeACC:
		return 0

	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		return 0

	case addrModeZP:
		c.operandAddr = uint16(mem.Read8(c.pc))
		c.pc++
		return 0

	case addrModeZPX:
		// index addition wraps within page zero
		c.operandAddr = uint16(mem.Read8(c.pc) + c.x)
		c.pc++
		return 0

	case addrModeZPY:
		c.operandAddr = uint16(mem.Read8(c.pc) + c.y)
		c.pc++
		return 0

	case addrModeREL:
		offset := uint16(mem.Read8(c.pc))
		c.pc++
		if offset&0x80 > 0 {
			offset |= 0xff00 // sign extension
		}
		c.operandAddr = c.pc + offset
		return 0

	case addrModeABS:
		c.operandAddr = c.read16(mem, c.pc)
		c.pc += 2
		return 0

	case addrModeABSX:
		baseAddr := c.read16(mem, c.pc)
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.x)
		if isDiffPage(baseAddr, c.operandAddr) {
			return 1
		}
		return 0

	case addrModeABSY:
		baseAddr := c.read16(mem, c.pc)
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.y)
		if isDiffPage(baseAddr, c.operandAddr) {
			return 1
		}
		return 0

	case addrModeIND:
		ptr := c.read16(mem, c.pc)
		c.pc += 2

		lo := ptr
		hi := ptr + 1
		if lo&0x00ff == 0x00ff {
			// hardware bug: a pointer ending in $FF wraps within its own
			// page instead of carrying into the next one
			hi = lo & 0xff00
		}
		c.operandAddr = uint16(mem.Read8(lo)) | uint16(mem.Read8(hi))<<8
		return 0

	case addrModeINDX:
		ptr := uint16(mem.Read8(c.pc)) + uint16(c.x)
		c.pc++
		lo := uint16(mem.Read8(ptr & 0x00ff))
		hi := uint16(mem.Read8((ptr + 1) & 0x00ff))
		c.operandAddr = lo | hi<<8
		return 0

	case addrModeINDY:
		ptr := uint16(mem.Read8(c.pc))
		c.pc++
		lo := uint16(mem.Read8(ptr))
		hi := uint16(mem.Read8((ptr + 1) & 0x00ff))
		baseAddr := lo | hi<<8
		c.operandAddr = baseAddr + uint16(c.y)
		if isDiffPage(baseAddr, c.operandAddr) {
			return 1
		}
		return 0
	}

	return 0
}
