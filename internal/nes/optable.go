package nes

// operation is a tag identifying the effect of an instruction. Dispatch
// happens in a single switch in execute, keeping the opcode table pure data.
type operation uint8

const (
	opXXX operation = iota // illegal opcode placeholder, no effect
	opADC
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
)

type instruction struct {
	name   string
	op     operation
	mode   addrMode
	cycles uint8
}

// optable maps every opcode byte to an instruction. The table is total:
// illegal opcodes carry a placeholder operation with the reference cycle
// cost, so decoding can never fail.
var optable = [0x100]instruction{
	0x00: {"BRK", opBRK, addrModeIMP, 7},
	0x01: {"ORA", opORA, addrModeINDX, 6},
	0x02: {"???", opXXX, addrModeIMP, 2},
	0x03: {"???", opXXX, addrModeIMP, 8},
	0x04: {"???", opNOP, addrModeIMP, 3},
	0x05: {"ORA", opORA, addrModeZP, 3},
	0x06: {"ASL", opASL, addrModeZP, 5},
	0x07: {"???", opXXX, addrModeIMP, 5},
	0x08: {"PHP", opPHP, addrModeIMP, 3},
	0x09: {"ORA", opORA, addrModeIMM, 2},
	0x0a: {"ASL", opASL, addrModeACC, 2},
	0x0b: {"???", opXXX, addrModeIMP, 2},
	0x0c: {"???", opNOP, addrModeIMP, 4},
	0x0d: {"ORA", opORA, addrModeABS, 4},
	0x0e: {"ASL", opASL, addrModeABS, 6},
	0x0f: {"???", opXXX, addrModeIMP, 6},
	0x10: {"BPL", opBPL, addrModeREL, 2},
	0x11: {"ORA", opORA, addrModeINDY, 5},
	0x12: {"???", opXXX, addrModeIMP, 2},
	0x13: {"???", opXXX, addrModeIMP, 8},
	0x14: {"???", opNOP, addrModeIMP, 4},
	0x15: {"ORA", opORA, addrModeZPX, 4},
	0x16: {"ASL", opASL, addrModeZPX, 6},
	0x17: {"???", opXXX, addrModeIMP, 6},
	0x18: {"CLC", opCLC, addrModeIMP, 2},
	0x19: {"ORA", opORA, addrModeABSY, 4},
	0x1a: {"???", opNOP, addrModeIMP, 2},
	0x1b: {"???", opXXX, addrModeIMP, 7},
	0x1c: {"???", opNOP, addrModeIMP, 4},
	0x1d: {"ORA", opORA, addrModeABSX, 4},
	0x1e: {"ASL", opASL, addrModeABSX, 7},
	0x1f: {"???", opXXX, addrModeIMP, 7},
	0x20: {"JSR", opJSR, addrModeABS, 6},
	0x21: {"AND", opAND, addrModeINDX, 6},
	0x22: {"???", opXXX, addrModeIMP, 2},
	0x23: {"???", opXXX, addrModeIMP, 8},
	0x24: {"BIT", opBIT, addrModeZP, 3},
	0x25: {"AND", opAND, addrModeZP, 3},
	0x26: {"ROL", opROL, addrModeZP, 5},
	0x27: {"???", opXXX, addrModeIMP, 5},
	0x28: {"PLP", opPLP, addrModeIMP, 4},
	0x29: {"AND", opAND, addrModeIMM, 2},
	0x2a: {"ROL", opROL, addrModeACC, 2},
	0x2b: {"???", opXXX, addrModeIMP, 2},
	0x2c: {"BIT", opBIT, addrModeABS, 4},
	0x2d: {"AND", opAND, addrModeABS, 4},
	0x2e: {"ROL", opROL, addrModeABS, 6},
	0x2f: {"???", opXXX, addrModeIMP, 6},
	0x30: {"BMI", opBMI, addrModeREL, 2},
	0x31: {"AND", opAND, addrModeINDY, 5},
	0x32: {"???", opXXX, addrModeIMP, 2},
	0x33: {"???", opXXX, addrModeIMP, 8},
	0x34: {"???", opNOP, addrModeIMP, 4},
	0x35: {"AND", opAND, addrModeZPX, 4},
	0x36: {"ROL", opROL, addrModeZPX, 6},
	0x37: {"???", opXXX, addrModeIMP, 6},
	0x38: {"SEC", opSEC, addrModeIMP, 2},
	0x39: {"AND", opAND, addrModeABSY, 4},
	0x3a: {"???", opNOP, addrModeIMP, 2},
	0x3b: {"???", opXXX, addrModeIMP, 7},
	0x3c: {"???", opNOP, addrModeIMP, 4},
	0x3d: {"AND", opAND, addrModeABSX, 4},
	0x3e: {"ROL", opROL, addrModeABSX, 7},
	0x3f: {"???", opXXX, addrModeIMP, 7},
	0x40: {"RTI", opRTI, addrModeIMP, 6},
	0x41: {"EOR", opEOR, addrModeINDX, 6},
	0x42: {"???", opXXX, addrModeIMP, 2},
	0x43: {"???", opXXX, addrModeIMP, 8},
	0x44: {"???", opNOP, addrModeIMP, 3},
	0x45: {"EOR", opEOR, addrModeZP, 3},
	0x46: {"LSR", opLSR, addrModeZP, 5},
	0x47: {"???", opXXX, addrModeIMP, 5},
	0x48: {"PHA", opPHA, addrModeIMP, 3},
	0x49: {"EOR", opEOR, addrModeIMM, 2},
	0x4a: {"LSR", opLSR, addrModeACC, 2},
	0x4b: {"???", opXXX, addrModeIMP, 2},
	0x4c: {"JMP", opJMP, addrModeABS, 3},
	0x4d: {"EOR", opEOR, addrModeABS, 4},
	0x4e: {"LSR", opLSR, addrModeABS, 6},
	0x4f: {"???", opXXX, addrModeIMP, 6},
	0x50: {"BVC", opBVC, addrModeREL, 2},
	0x51: {"EOR", opEOR, addrModeINDY, 5},
	0x52: {"???", opXXX, addrModeIMP, 2},
	0x53: {"???", opXXX, addrModeIMP, 8},
	0x54: {"???", opNOP, addrModeIMP, 4},
	0x55: {"EOR", opEOR, addrModeZPX, 4},
	0x56: {"LSR", opLSR, addrModeZPX, 6},
	0x57: {"???", opXXX, addrModeIMP, 6},
	0x58: {"CLI", opCLI, addrModeIMP, 2},
	0x59: {"EOR", opEOR, addrModeABSY, 4},
	0x5a: {"???", opNOP, addrModeIMP, 2},
	0x5b: {"???", opXXX, addrModeIMP, 7},
	0x5c: {"???", opNOP, addrModeIMP, 4},
	0x5d: {"EOR", opEOR, addrModeABSX, 4},
	0x5e: {"LSR", opLSR, addrModeABSX, 7},
	0x5f: {"???", opXXX, addrModeIMP, 7},
	0x60: {"RTS", opRTS, addrModeIMP, 6},
	0x61: {"ADC", opADC, addrModeINDX, 6},
	0x62: {"???", opXXX, addrModeIMP, 2},
	0x63: {"???", opXXX, addrModeIMP, 8},
	0x64: {"???", opNOP, addrModeIMP, 3},
	0x65: {"ADC", opADC, addrModeZP, 3},
	0x66: {"ROR", opROR, addrModeZP, 5},
	0x67: {"???", opXXX, addrModeIMP, 5},
	0x68: {"PLA", opPLA, addrModeIMP, 4},
	0x69: {"ADC", opADC, addrModeIMM, 2},
	0x6a: {"ROR", opROR, addrModeACC, 2},
	0x6b: {"???", opXXX, addrModeIMP, 2},
	0x6c: {"JMP", opJMP, addrModeIND, 5},
	0x6d: {"ADC", opADC, addrModeABS, 4},
	0x6e: {"ROR", opROR, addrModeABS, 6},
	0x6f: {"???", opXXX, addrModeIMP, 6},
	0x70: {"BVS", opBVS, addrModeREL, 2},
	0x71: {"ADC", opADC, addrModeINDY, 5},
	0x72: {"???", opXXX, addrModeIMP, 2},
	0x73: {"???", opXXX, addrModeIMP, 8},
	0x74: {"???", opNOP, addrModeIMP, 4},
	0x75: {"ADC", opADC, addrModeZPX, 4},
	0x76: {"ROR", opROR, addrModeZPX, 6},
	0x77: {"???", opXXX, addrModeIMP, 6},
	0x78: {"SEI", opSEI, addrModeIMP, 2},
	0x79: {"ADC", opADC, addrModeABSY, 4},
	0x7a: {"???", opNOP, addrModeIMP, 2},
	0x7b: {"???", opXXX, addrModeIMP, 7},
	0x7c: {"???", opNOP, addrModeIMP, 4},
	0x7d: {"ADC", opADC, addrModeABSX, 4},
	0x7e: {"ROR", opROR, addrModeABSX, 7},
	0x7f: {"???", opXXX, addrModeIMP, 7},
	0x80: {"???", opNOP, addrModeIMP, 2},
	0x81: {"STA", opSTA, addrModeINDX, 6},
	0x82: {"???", opNOP, addrModeIMP, 2},
	0x83: {"???", opXXX, addrModeIMP, 6},
	0x84: {"STY", opSTY, addrModeZP, 3},
	0x85: {"STA", opSTA, addrModeZP, 3},
	0x86: {"STX", opSTX, addrModeZP, 3},
	0x87: {"???", opXXX, addrModeIMP, 3},
	0x88: {"DEY", opDEY, addrModeIMP, 2},
	0x89: {"???", opNOP, addrModeIMP, 2},
	0x8a: {"TXA", opTXA, addrModeIMP, 2},
	0x8b: {"???", opXXX, addrModeIMP, 2},
	0x8c: {"STY", opSTY, addrModeABS, 4},
	0x8d: {"STA", opSTA, addrModeABS, 4},
	0x8e: {"STX", opSTX, addrModeABS, 4},
	0x8f: {"???", opXXX, addrModeIMP, 4},
	0x90: {"BCC", opBCC, addrModeREL, 2},
	0x91: {"STA", opSTA, addrModeINDY, 6},
	0x92: {"???", opXXX, addrModeIMP, 2},
	0x93: {"???", opXXX, addrModeIMP, 6},
	0x94: {"STY", opSTY, addrModeZPX, 4},
	0x95: {"STA", opSTA, addrModeZPX, 4},
	0x96: {"STX", opSTX, addrModeZPY, 4},
	0x97: {"???", opXXX, addrModeIMP, 4},
	0x98: {"TYA", opTYA, addrModeIMP, 2},
	0x99: {"STA", opSTA, addrModeABSY, 5},
	0x9a: {"TXS", opTXS, addrModeIMP, 2},
	0x9b: {"???", opXXX, addrModeIMP, 5},
	0x9c: {"???", opNOP, addrModeIMP, 5},
	0x9d: {"STA", opSTA, addrModeABSX, 5},
	0x9e: {"???", opXXX, addrModeIMP, 5},
	0x9f: {"???", opXXX, addrModeIMP, 5},
	0xa0: {"LDY", opLDY, addrModeIMM, 2},
	0xa1: {"LDA", opLDA, addrModeINDX, 6},
	0xa2: {"LDX", opLDX, addrModeIMM, 2},
	0xa3: {"???", opXXX, addrModeIMP, 6},
	0xa4: {"LDY", opLDY, addrModeZP, 3},
	0xa5: {"LDA", opLDA, addrModeZP, 3},
	0xa6: {"LDX", opLDX, addrModeZP, 3},
	0xa7: {"???", opXXX, addrModeIMP, 3},
	0xa8: {"TAY", opTAY, addrModeIMP, 2},
	0xa9: {"LDA", opLDA, addrModeIMM, 2},
	0xaa: {"TAX", opTAX, addrModeIMP, 2},
	0xab: {"???", opXXX, addrModeIMP, 2},
	0xac: {"LDY", opLDY, addrModeABS, 4},
	0xad: {"LDA", opLDA, addrModeABS, 4},
	0xae: {"LDX", opLDX, addrModeABS, 4},
	0xaf: {"???", opXXX, addrModeIMP, 4},
	0xb0: {"BCS", opBCS, addrModeREL, 2},
	0xb1: {"LDA", opLDA, addrModeINDY, 5},
	0xb2: {"???", opXXX, addrModeIMP, 2},
	0xb3: {"???", opXXX, addrModeIMP, 5},
	0xb4: {"LDY", opLDY, addrModeZPX, 4},
	0xb5: {"LDA", opLDA, addrModeZPX, 4},
	0xb6: {"LDX", opLDX, addrModeZPY, 4},
	0xb7: {"???", opXXX, addrModeIMP, 4},
	0xb8: {"CLV", opCLV, addrModeIMP, 2},
	0xb9: {"LDA", opLDA, addrModeABSY, 4},
	0xba: {"TSX", opTSX, addrModeIMP, 2},
	0xbb: {"???", opXXX, addrModeIMP, 4},
	0xbc: {"LDY", opLDY, addrModeABSX, 4},
	0xbd: {"LDA", opLDA, addrModeABSX, 4},
	0xbe: {"LDX", opLDX, addrModeABSY, 4},
	0xbf: {"???", opXXX, addrModeIMP, 4},
	0xc0: {"CPY", opCPY, addrModeIMM, 2},
	0xc1: {"CMP", opCMP, addrModeINDX, 6},
	0xc2: {"???", opNOP, addrModeIMP, 2},
	0xc3: {"???", opXXX, addrModeIMP, 8},
	0xc4: {"CPY", opCPY, addrModeZP, 3},
	0xc5: {"CMP", opCMP, addrModeZP, 3},
	0xc6: {"DEC", opDEC, addrModeZP, 5},
	0xc7: {"???", opXXX, addrModeIMP, 5},
	0xc8: {"INY", opINY, addrModeIMP, 2},
	0xc9: {"CMP", opCMP, addrModeIMM, 2},
	0xca: {"DEX", opDEX, addrModeIMP, 2},
	0xcb: {"???", opXXX, addrModeIMP, 2},
	0xcc: {"CPY", opCPY, addrModeABS, 4},
	0xcd: {"CMP", opCMP, addrModeABS, 4},
	0xce: {"DEC", opDEC, addrModeABS, 6},
	0xcf: {"???", opXXX, addrModeIMP, 6},
	0xd0: {"BNE", opBNE, addrModeREL, 2},
	0xd1: {"CMP", opCMP, addrModeINDY, 5},
	0xd2: {"???", opXXX, addrModeIMP, 2},
	0xd3: {"???", opXXX, addrModeIMP, 8},
	0xd4: {"???", opNOP, addrModeIMP, 4},
	0xd5: {"CMP", opCMP, addrModeZPX, 4},
	0xd6: {"DEC", opDEC, addrModeZPX, 6},
	0xd7: {"???", opXXX, addrModeIMP, 6},
	0xd8: {"CLD", opCLD, addrModeIMP, 2},
	0xd9: {"CMP", opCMP, addrModeABSY, 4},
	0xda: {"NOP", opNOP, addrModeIMP, 2},
	0xdb: {"???", opXXX, addrModeIMP, 7},
	0xdc: {"???", opNOP, addrModeIMP, 4},
	0xdd: {"CMP", opCMP, addrModeABSX, 4},
	0xde: {"DEC", opDEC, addrModeABSX, 7},
	0xdf: {"???", opXXX, addrModeIMP, 7},
	0xe0: {"CPX", opCPX, addrModeIMM, 2},
	0xe1: {"SBC", opSBC, addrModeINDX, 6},
	0xe2: {"???", opNOP, addrModeIMP, 2},
	0xe3: {"???", opXXX, addrModeIMP, 8},
	0xe4: {"CPX", opCPX, addrModeZP, 3},
	0xe5: {"SBC", opSBC, addrModeZP, 3},
	0xe6: {"INC", opINC, addrModeZP, 5},
	0xe7: {"???", opXXX, addrModeIMP, 5},
	0xe8: {"INX", opINX, addrModeIMP, 2},
	0xe9: {"SBC", opSBC, addrModeIMM, 2},
	0xea: {"NOP", opNOP, addrModeIMP, 2},
	0xeb: {"???", opSBC, addrModeIMP, 2},
	0xec: {"CPX", opCPX, addrModeABS, 4},
	0xed: {"SBC", opSBC, addrModeABS, 4},
	0xee: {"INC", opINC, addrModeABS, 6},
	0xef: {"???", opXXX, addrModeIMP, 6},
	0xf0: {"BEQ", opBEQ, addrModeREL, 2},
	0xf1: {"SBC", opSBC, addrModeINDY, 5},
	0xf2: {"???", opXXX, addrModeIMP, 2},
	0xf3: {"???", opXXX, addrModeIMP, 8},
	0xf4: {"???", opNOP, addrModeIMP, 4},
	0xf5: {"SBC", opSBC, addrModeZPX, 4},
	0xf6: {"INC", opINC, addrModeZPX, 6},
	0xf7: {"???", opXXX, addrModeIMP, 6},
	0xf8: {"SED", opSED, addrModeIMP, 2},
	0xf9: {"SBC", opSBC, addrModeABSY, 4},
	0xfa: {"NOP", opNOP, addrModeIMP, 2},
	0xfb: {"???", opXXX, addrModeIMP, 7},
	0xfc: {"???", opNOP, addrModeIMP, 4},
	0xfd: {"SBC", opSBC, addrModeABSX, 4},
	0xfe: {"INC", opINC, addrModeABSX, 7},
	0xff: {"???", opXXX, addrModeIMP, 7},
}
