package nes

import "fmt"

// Mapper translates bus addresses into physical offsets within the
// cartridge's program and pattern memories. A translation either yields an
// offset or reports the address as unmapped; it never fails otherwise.
type Mapper interface {
	MapCPURead(addr uint16) (uint32, bool)
	MapCPUWrite(addr uint16) (uint32, bool)
	MapPPURead(addr uint16) (uint32, bool)
	MapPPUWrite(addr uint16) (uint32, bool)
}

func NewMapper(id uint8, prgBanks, chrBanks uint8) (Mapper, error) {
	switch id {
	case 0:
		return &Mapper0{prgBanks: prgBanks, chrBanks: chrBanks}, nil
	}
	return nil, fmt.Errorf("unsupported mapper %d", id)
}

// Mapper0 is NROM: no banking at all. Program memory is mirrored into
// $8000-$FFFF, pattern memory passes through unchanged.
type Mapper0 struct {
	prgBanks uint8
	chrBanks uint8
}

func (m Mapper0) mapPRG(addr uint16) (uint32, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if m.prgBanks > 1 {
		return uint32(addr & 0x7fff), true
	}
	return uint32(addr & 0x3fff), true
}

func (m Mapper0) MapCPURead(addr uint16) (uint32, bool) {
	return m.mapPRG(addr)
}

func (m Mapper0) MapCPUWrite(addr uint16) (uint32, bool) {
	return m.mapPRG(addr)
}

func (m Mapper0) MapPPURead(addr uint16) (uint32, bool) {
	if addr <= 0x1fff {
		return uint32(addr), true
	}
	return 0, false
}

func (m Mapper0) MapPPUWrite(addr uint16) (uint32, bool) {
	// pattern memory is writable only when the cartridge carries RAM
	// there instead of ROM
	if addr <= 0x1fff && m.chrBanks == 0 {
		return uint32(addr), true
	}
	return 0, false
}
