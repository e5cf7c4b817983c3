package nes

import "fmt"

// Disassemble renders every instruction reachable in the 16-bit address
// space into a map keyed by the instruction's address. It uses peeks only,
// so registers with read side effects are left alone.
func Disassemble(mem ReadWriter) map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xffff {
		pc := uint16(addr)
		instr := optable[mem.Peek8(pc)]
		line := fmt.Sprintf("$%04X: %s", pc, instr.name)
		if operand := formatOperand(mem, pc+1, instr.mode); operand != "" {
			line += " " + operand
		}
		disasm[pc] = fmt.Sprintf("%s {%s}", line, instr.mode)
		addr += 1 + uint32(instr.mode.operandBytes())
	}

	return disasm
}

func formatOperand(mem ReadWriter, pc uint16, mode addrMode) string {
	switch mode {
	case addrModeIMM:
		return fmt.Sprintf("#$%02X", mem.Peek8(pc))
	case addrModeZP:
		return fmt.Sprintf("$%02X", mem.Peek8(pc))
	case addrModeZPX:
		return fmt.Sprintf("$%02X,X", mem.Peek8(pc))
	case addrModeZPY:
		return fmt.Sprintf("$%02X,Y", mem.Peek8(pc))
	case addrModeABS:
		return fmt.Sprintf("$%04X", peek16(mem, pc))
	case addrModeABSX:
		return fmt.Sprintf("$%04X,X", peek16(mem, pc))
	case addrModeABSY:
		return fmt.Sprintf("$%04X,Y", peek16(mem, pc))
	case addrModeIND:
		return fmt.Sprintf("($%04X)", peek16(mem, pc))
	case addrModeINDX:
		return fmt.Sprintf("($%02X,X)", mem.Peek8(pc))
	case addrModeINDY:
		return fmt.Sprintf("($%02X),Y", mem.Peek8(pc))
	case addrModeREL:
		offset := uint16(mem.Peek8(pc))
		if offset&0x80 > 0 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04X", pc+1+offset)
	case addrModeACC:
		return "A"
	}
	return ""
}

func peek16(mem ReadWriter, addr uint16) uint16 {
	return uint16(mem.Peek8(addr)) | uint16(mem.Peek8(addr+1))<<8
}
