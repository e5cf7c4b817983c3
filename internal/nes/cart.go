package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	trainerSizeBytes = 512
)

// Mirror is the nametable mirroring mode hardwired by the cartridge.
type Mirror uint8

const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
)

type Cart struct {
	prgMem []uint8
	chrMem []uint8

	prgBanks uint8
	chrBanks uint8
	mapperID uint8
	mirror   Mirror

	mapper Mapper
	valid  bool
}

// NewCartFromFile reads a .nes file and returns a Cart.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer file.Close()

	var header struct {
		Magic      [4]uint8
		PrgBanks   uint8
		ChrBanks   uint8
		Flags6     uint8
		Flags7     uint8
		PrgRAMSize uint8
		TVSystem1  uint8
		TVSystem2  uint8
		_          [5]uint8 // reserved
	}
	if err := binary.Read(file, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %w", err)
	}
	// the magic bytes are deliberately not validated: only the size and
	// flag fields matter to the core

	// the third bit of flags6 is the trainer flag
	if header.Flags6&0x04 != 0 {
		if _, err := file.Seek(trainerSizeBytes, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %w", err)
		}
	}

	// flags6 and flags7 carry the mapper ID in their 4 high bits:
	// flags6: lower nibble of the mapper ID
	// flags7: upper nibble of the mapper ID
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgBanks)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(header.ChrBanks)*chrBankSizeBytes),
		prgBanks: header.PrgBanks,
		chrBanks: header.ChrBanks,
		mapperID: mapperID,
		mirror:   Mirror(header.Flags6 & 0x01),
	}
	if header.ChrBanks == 0 {
		// no pattern ROM means the board provides pattern RAM
		cart.chrMem = make([]uint8, chrBankSizeBytes)
	}

	cart.mapper, err = NewMapper(mapperID, header.PrgBanks, header.ChrBanks)
	if err != nil {
		return nil, err
	}

	if _, err := io.ReadFull(file, cart.prgMem); err != nil {
		return nil, fmt.Errorf("couldn't read PRG ROM: %w", err)
	}
	if header.ChrBanks > 0 {
		if _, err := io.ReadFull(file, cart.chrMem); err != nil {
			return nil, fmt.Errorf("couldn't read CHR ROM: %w", err)
		}
	}

	cart.valid = true
	return cart, nil
}

// Valid reports whether the cartridge loaded completely. The bus treats an
// invalid cartridge like an absent one.
func (c *Cart) Valid() bool {
	return c != nil && c.valid
}

func (c *Cart) Mirroring() Mirror {
	return c.mirror
}

// CPURead8 resolves a read on the processor side of the bus. Unmapped
// addresses report false so the bus can fall back to its open-bus value.
func (c *Cart) CPURead8(addr uint16) (uint8, bool) {
	if offset, ok := c.mapper.MapCPURead(addr); ok {
		return c.prgMem[offset], true
	}
	return 0, false
}

func (c *Cart) CPUWrite8(addr uint16, data uint8) bool {
	if offset, ok := c.mapper.MapCPUWrite(addr); ok {
		c.prgMem[offset] = data
		return true
	}
	return false
}

// PPURead8 resolves a read on the picture unit side of the bus.
func (c *Cart) PPURead8(addr uint16) (uint8, bool) {
	if offset, ok := c.mapper.MapPPURead(addr); ok {
		return c.chrMem[offset], true
	}
	return 0, false
}

func (c *Cart) PPUWrite8(addr uint16, data uint8) bool {
	if offset, ok := c.mapper.MapPPUWrite(addr); ok {
		c.chrMem[offset] = data
		return true
	}
	return false
}
