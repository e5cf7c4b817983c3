package nes

// fetch returns the operand value for the current instruction.
func (c *CPU) fetch(mem ReadWriter) uint8 {
	if c.mode == addrModeACC {
		return c.a
	}
	return mem.Read8(c.operandAddr)
}

// writeBack stores a shift/rotate result either into the accumulator or
// back into memory, depending on the addressing mode.
func (c *CPU) writeBack(mem ReadWriter, data uint8) {
	if c.mode == addrModeACC {
		c.a = data
		return
	}
	mem.Write8(c.operandAddr, data)
}

// addWithCarry implements the shared ADC/SBC core: SBC is an addition of
// the one's complement of the operand.
func (c *CPU) addWithCarry(m uint8) {
	r16 := uint16(c.a) + uint16(m)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlag(flagV, isSameSign(c.a, m) && !isSameSign(c.a, r8))
	c.setFlagsZN(r8)
	c.a = r8
}

// branch applies the taken and page-cross penalties directly: whether a
// branch is taken is data dependent, so the addressing-mode signal cannot
// cover it.
func (c *CPU) branch(taken bool) {
	if !taken {
		return
	}
	c.cycles++
	if isDiffPage(c.pc, c.operandAddr) {
		c.cycles++
	}
	c.pc = c.operandAddr
}

func (c *CPU) compare(mem ReadWriter, reg uint8) {
	m := c.fetch(mem)
	c.setFlag(flagC, reg >= m)
	c.setFlagsZN(reg - m)
}

// execute performs the effect of a single operation. The return value is 1
// when the operation pays the page-cross penalty signalled by the
// addressing mode, else 0.
func (c *CPU) execute(mem ReadWriter, op operation) uint8 {
	switch op {
	case opADC:
		c.addWithCarry(c.fetch(mem))
		return 1

	case opSBC:
		c.addWithCarry(^c.fetch(mem))
		return 1

	case opAND:
		c.a &= c.fetch(mem)
		c.setFlagsZN(c.a)
		return 1

	case opORA:
		c.a |= c.fetch(mem)
		c.setFlagsZN(c.a)
		return 1

	case opEOR:
		c.a ^= c.fetch(mem)
		c.setFlagsZN(c.a)
		return 1

	case opASL:
		m := c.fetch(mem)
		c.setFlag(flagC, m&0x80 > 0)
		r := m << 1
		c.setFlagsZN(r)
		c.writeBack(mem, r)

	case opLSR:
		m := c.fetch(mem)
		c.setFlag(flagC, m&0x01 > 0)
		r := m >> 1
		c.setFlagsZN(r)
		c.writeBack(mem, r)

	case opROL:
		m := c.fetch(mem)
		r := m << 1
		if c.getFlag(flagC) {
			r |= 0x01
		}
		c.setFlag(flagC, m&0x80 > 0)
		c.setFlagsZN(r)
		c.writeBack(mem, r)

	case opROR:
		m := c.fetch(mem)
		r := m >> 1
		if c.getFlag(flagC) {
			r |= 0x80
		}
		c.setFlag(flagC, m&0x01 > 0)
		c.setFlagsZN(r)
		c.writeBack(mem, r)

	case opBIT:
		m := c.fetch(mem)
		c.setFlag(flagZ, c.a&m == 0)
		c.setFlag(flagV, m&flagV > 0)
		c.setFlag(flagN, m&flagN > 0)

	case opCMP:
		c.compare(mem, c.a)
		return 1

	case opCPX:
		c.compare(mem, c.x)

	case opCPY:
		c.compare(mem, c.y)

	case opLDA:
		c.a = c.fetch(mem)
		c.setFlagsZN(c.a)
		return 1

	case opLDX:
		c.x = c.fetch(mem)
		c.setFlagsZN(c.x)
		return 1

	case opLDY:
		c.y = c.fetch(mem)
		c.setFlagsZN(c.y)
		return 1

	case opSTA:
		mem.Write8(c.operandAddr, c.a)

	case opSTX:
		mem.Write8(c.operandAddr, c.x)

	case opSTY:
		mem.Write8(c.operandAddr, c.y)

	case opINC:
		r := c.fetch(mem) + 1
		c.setFlagsZN(r)
		mem.Write8(c.operandAddr, r)

	case opDEC:
		r := c.fetch(mem) - 1
		c.setFlagsZN(r)
		mem.Write8(c.operandAddr, r)

	case opINX:
		c.x++
		c.setFlagsZN(c.x)

	case opINY:
		c.y++
		c.setFlagsZN(c.y)

	case opDEX:
		c.x--
		c.setFlagsZN(c.x)

	case opDEY:
		c.y--
		c.setFlagsZN(c.y)

	case opTAX:
		c.x = c.a
		c.setFlagsZN(c.x)

	case opTAY:
		c.y = c.a
		c.setFlagsZN(c.y)

	case opTXA:
		c.a = c.x
		c.setFlagsZN(c.a)

	case opTYA:
		c.a = c.y
		c.setFlagsZN(c.a)

	case opTSX:
		c.x = c.sp
		c.setFlagsZN(c.x)

	case opTXS:
		c.sp = c.x

	case opPHA:
		c.stackPush8(mem, c.a)

	case opPHP:
		c.stackPush8(mem, c.p|flagB|flagU)

	case opPLA:
		c.a = c.stackPop8(mem)
		c.setFlagsZN(c.a)

	case opPLP:
		c.p = (c.stackPop8(mem) | flagU) & ^flagB

	case opJMP:
		c.pc = c.operandAddr

	case opJSR:
		// PC already points past the operand, the return address on the
		// stack is the last operand byte
		c.pc--
		c.stackPush16(mem, c.pc)
		c.pc = c.operandAddr

	case opRTS:
		c.pc = c.stackPop16(mem)
		c.pc++

	case opRTI:
		c.p = (c.stackPop8(mem) | flagU) & ^flagB
		c.pc = c.stackPop16(mem)

	case opBRK:
		c.pc++
		c.stackPush16(mem, c.pc)
		c.stackPush8(mem, c.p|flagB)
		c.setFlag(flagI, true)
		c.pc = c.read16(mem, vectorIRQ)

	case opBCC:
		c.branch(!c.getFlag(flagC))

	case opBCS:
		c.branch(c.getFlag(flagC))

	case opBNE:
		c.branch(!c.getFlag(flagZ))

	case opBEQ:
		c.branch(c.getFlag(flagZ))

	case opBPL:
		c.branch(!c.getFlag(flagN))

	case opBMI:
		c.branch(c.getFlag(flagN))

	case opBVC:
		c.branch(!c.getFlag(flagV))

	case opBVS:
		c.branch(c.getFlag(flagV))

	case opCLC:
		c.setFlag(flagC, false)

	case opSEC:
		c.setFlag(flagC, true)

	case opCLI:
		c.setFlag(flagI, false)

	case opSEI:
		c.setFlag(flagI, true)

	case opCLD:
		c.setFlag(flagD, false)

	case opSED:
		c.setFlag(flagD, true)

	case opCLV:
		c.setFlag(flagV, false)

	case opNOP, opXXX:
		// illegal opcodes decode to a placeholder: they burn their table
		// cycles and touch nothing
	}

	return 0
}
