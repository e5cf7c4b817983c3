package nes

import (
	"image"
	"math/rand"
)

const (
	screenWidth  = 256
	screenHeight = 240

	cyclesPerScanline = 341
	scanlinesPerFrame = 261
)

// Status register flags.
const (
	statusSpriteOverflow = uint8(1 << 5)
	statusSpriteZeroHit  = uint8(1 << 6)
	statusVerticalBlank  = uint8(1 << 7)
)

// PPU is an emulation of the 2C02 picture processing unit. Rendering is not
// implemented: the unit advances its cycle/scanline counters, raises the
// frame-complete flag and exposes bit-accurate register ports.
type PPU struct {
	// register ports
	ctrl   uint8
	mask   uint8
	status uint8

	// PPU-side bus memory
	nameTable    [2][0x400]uint8
	patternTable [2][0x1000]uint8
	paletteTable [0x20]uint8
	cart         *Cart

	cycle         int
	scanline      int
	frame         uint64
	frameComplete bool

	screen *image.RGBA
}

func NewPPU() *PPU {
	return &PPU{
		screen: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
	}
}

func (p *PPU) ConnectCartridge(cart *Cart) {
	p.cart = cart
}

func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.cycle = 0
	p.scanline = 0
	p.frame = 0
	p.frameComplete = false
}

// Clock advances the PPU by one cycle. The cycle counter runs 0..340, the
// scanline counter -1..260; the frame-complete flag is raised at the
// scanline wrap.
func (p *PPU) Clock() {
	// without rendering the output is snow, like a TV tuned to a dead
	// channel
	if x, y := p.cycle-1, p.scanline; x >= 0 && x < screenWidth && y >= 0 && y < screenHeight {
		colorIdx := 0x3f
		if rand.Intn(2) == 0 {
			colorIdx = 0x30
		}
		p.screen.SetRGBA(x, y, palette[colorIdx])
	}

	p.cycle++
	if p.cycle >= cyclesPerScanline {
		p.cycle = 0
		p.scanline++

		if p.scanline >= scanlinesPerFrame {
			p.scanline = -1
			p.frame++
			p.frameComplete = true
		}
	}
}

func (p *PPU) FrameComplete() bool {
	return p.frameComplete
}

func (p *PPU) ClearFrameComplete() {
	p.frameComplete = false
}

// Screen returns the current framebuffer.
func (p *PPU) Screen() image.Image {
	return p.screen
}

// ReadRegister services a live CPU-side read of ports 0..7. Reading the
// status port clears the vertical blank flag.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr {
	case 0x2:
		data := p.status
		p.status &= ^statusVerticalBlank
		return data
	}
	return 0
}

// PeekRegister reads ports 0..7 without side effects.
func (p *PPU) PeekRegister(addr uint16) uint8 {
	switch addr {
	case 0x0:
		return p.ctrl
	case 0x1:
		return p.mask
	case 0x2:
		return p.status
	}
	return 0
}

// WriteRegister services a CPU-side write to ports 0..7. Only the
// controller and mask ports are backed in this scope.
func (p *PPU) WriteRegister(addr uint16, data uint8) {
	switch addr {
	case 0x0:
		p.ctrl = data
	case 0x1:
		p.mask = data
	}
}

// ppuRead8 reads from the PPU-side address space: pattern tables,
// nametables with cartridge-controlled mirroring, then palette memory. The
// cartridge gets the first chance to claim an address.
func (p *PPU) ppuRead8(addr uint16) uint8 {
	addr &= 0x3fff

	if p.cart.Valid() {
		if data, ok := p.cart.PPURead8(addr); ok {
			return data
		}
	}

	switch {
	case addr <= 0x1fff:
		return p.patternTable[(addr&0x1000)>>12][addr&0x0fff]

	case addr <= 0x3eff:
		table, index := p.nameTableIndex(addr)
		return p.nameTable[table][index]

	default:
		return p.paletteTable[paletteIndex(addr)]
	}
}

func (p *PPU) ppuWrite8(addr uint16, data uint8) {
	addr &= 0x3fff

	if p.cart.Valid() && p.cart.PPUWrite8(addr, data) {
		return
	}

	switch {
	case addr <= 0x1fff:
		p.patternTable[(addr&0x1000)>>12][addr&0x0fff] = data

	case addr <= 0x3eff:
		table, index := p.nameTableIndex(addr)
		p.nameTable[table][index] = data

	default:
		p.paletteTable[paletteIndex(addr)] = data
	}
}

// nameTableIndex resolves a $2000-$3EFF address into one of the two
// physical nametables according to the cartridge's mirroring mode.
func (p *PPU) nameTableIndex(addr uint16) (int, uint16) {
	addr &= 0x0fff

	mirror := MirrorHorizontal
	if p.cart.Valid() {
		mirror = p.cart.Mirroring()
	}

	table := 0
	switch mirror {
	case MirrorHorizontal:
		if addr >= 0x0800 {
			table = 1
		}
	case MirrorVertical:
		if addr&0x0400 > 0 {
			table = 1
		}
	}
	return table, addr & 0x03ff
}

func paletteIndex(addr uint16) uint16 {
	addr &= 0x1f
	// the sprite palette's background entries alias the image palette
	switch addr {
	case 0x10, 0x14, 0x18, 0x1c:
		addr &= 0x0f
	}
	return addr
}
