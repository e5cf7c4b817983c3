package nes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testROMArgs struct {
	prgBanks uint8
	chrBanks uint8
	flags6   uint8
	flags7   uint8
	trainer  bool
	truncate int // drop this many bytes from the end
}

// writeTestROM builds an iNES file in a temp dir and returns its path. Each
// program bank is filled with its bank number so bank selection is visible
// in reads.
func writeTestROM(t *testing.T, args testROMArgs) string {
	t.Helper()

	header := make([]uint8, 16)
	copy(header, "NES\x1a")
	header[4] = args.prgBanks
	header[5] = args.chrBanks
	header[6] = args.flags6
	header[7] = args.flags7
	if args.trainer {
		header[6] |= 0x04
	}

	data := header
	if args.trainer {
		data = append(data, make([]uint8, trainerSizeBytes)...)
	}
	for bank := uint8(0); bank < args.prgBanks; bank++ {
		prg := make([]uint8, prgBankSizeBytes)
		for i := range prg {
			prg[i] = bank
		}
		data = append(data, prg...)
	}
	data = append(data, make([]uint8, int(args.chrBanks)*chrBankSizeBytes)...)

	if args.truncate > 0 {
		data = data[:len(data)-args.truncate]
	}

	path := filepath.Join(t.TempDir(), "test.nes")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCart_HeaderDecoding(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 2, chrBanks: 1, flags6: 0x01})
	cart, err := NewCartFromFile(rom)

	require.NoError(t, err)
	assert.True(t, cart.Valid())
	assert.Equal(t, uint8(2), cart.prgBanks, "PRG banks")
	assert.Equal(t, uint8(1), cart.chrBanks, "CHR banks")
	assert.Equal(t, uint8(0), cart.mapperID, "mapper ID")
	assert.Equal(t, MirrorVertical, cart.Mirroring())
	assert.Len(t, cart.prgMem, 2*prgBankSizeBytes)
	assert.Len(t, cart.chrMem, chrBankSizeBytes)
}

func TestCart_DefaultMirroring(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)

	require.NoError(t, err)
	assert.Equal(t, MirrorHorizontal, cart.Mirroring())
}

func TestCart_TrainerSkipped(t *testing.T) {
	// a trainer sits between the header and PRG data; loading must skip it
	rom := writeTestROM(t, testROMArgs{prgBanks: 2, chrBanks: 1, trainer: true})
	cart, err := NewCartFromFile(rom)

	require.NoError(t, err)
	assert.Equal(t, uint8(0), cart.prgMem[0], "first PRG byte is bank 0 fill")
	assert.Equal(t, uint8(1), cart.prgMem[prgBankSizeBytes], "second bank fill")
}

func TestCart_SingleBankMirrorsUpperHalf(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	require.NoError(t, err)

	cart.prgMem[0x0123] = 0xab

	lo, ok := cart.CPURead8(0x8123)
	assert.True(t, ok)
	hi, ok := cart.CPURead8(0xc123)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xab), lo)
	assert.Equal(t, lo, hi, "upper half mirrors the single bank")
}

func TestCart_TwoBanksMapDirectly(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 2, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	require.NoError(t, err)

	lo, ok := cart.CPURead8(0x8000)
	assert.True(t, ok)
	assert.Equal(t, uint8(0), lo, "bank 0 at $8000")

	hi, ok := cart.CPURead8(0xc000)
	assert.True(t, ok)
	assert.Equal(t, uint8(1), hi, "bank 1 at $C000")
}

func TestCart_UnmappedCPUAddress(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	require.NoError(t, err)

	_, ok := cart.CPURead8(0x7fff)
	assert.False(t, ok)
}

func TestCart_PatternRAM(t *testing.T) {
	// zero CHR banks means the board carries pattern RAM
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 0})
	cart, err := NewCartFromFile(rom)
	require.NoError(t, err)

	assert.Len(t, cart.chrMem, chrBankSizeBytes)
	assert.True(t, cart.PPUWrite8(0x1000, 0x7f))
	data, ok := cart.PPURead8(0x1000)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x7f), data)
}

func TestCart_PatternROMRejectsWrites(t *testing.T) {
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1})
	cart, err := NewCartFromFile(rom)
	require.NoError(t, err)

	assert.False(t, cart.PPUWrite8(0x1000, 0x7f))
}

func TestCart_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cart, err := NewCartFromFile(filepath.Join(t.TempDir(), "missing.nes"))
		assert.Error(t, err)
		assert.False(t, cart.Valid())
	})

	t.Run("truncated header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.nes")
		require.NoError(t, os.WriteFile(path, []byte("NES\x1a"), 0o644))

		cart, err := NewCartFromFile(path)
		assert.Error(t, err)
		assert.False(t, cart.Valid())
	})

	t.Run("truncated PRG data", func(t *testing.T) {
		rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 0, truncate: 0x1000})

		cart, err := NewCartFromFile(rom)
		assert.Error(t, err)
		assert.False(t, cart.Valid())
	})

	t.Run("unsupported mapper", func(t *testing.T) {
		rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1, flags6: 0x10})

		cart, err := NewCartFromFile(rom)
		assert.ErrorContains(t, err, "unsupported mapper 1")
		assert.False(t, cart.Valid())
	})
}

func TestCart_MapperIDNibbles(t *testing.T) {
	// flags6 high nibble is the low half of the ID, flags7 high nibble the
	// high half
	rom := writeTestROM(t, testROMArgs{prgBanks: 1, chrBanks: 1, flags6: 0x20, flags7: 0x10})

	_, err := NewCartFromFile(rom)
	assert.ErrorContains(t, err, "unsupported mapper 18")
}
