package system

import (
	"errors"
	"testing"

	"github.com/kbecker/gbcore/gbcore/addr"
	"github.com/kbecker/gbcore/gbcore/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalROM builds a header-valid 32KB ROM with no MBC (type 0x00), for
// tests that only care about System's own bookkeeping, not bank switching.
func minimalROM(title string) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x134:0x144], title)
	rom[0x147] = 0x00 // MBCNone
	rom[0x148] = 0x00 // 32KB
	rom[0x149] = 0x00 // no external RAM
	return rom
}

func TestNewIsPoweredOff(t *testing.T) {
	sys := New()

	assert.Equal(t, uint16(0), sys.cpu.PC())
	assert.Equal(t, "", sys.CartridgeTitle())
	assert.Equal(t, uint8(0xFF), sys.Read(0x0000)) // no cartridge: ROM reads as 0xFF
}

func TestLoadROM(t *testing.T) {
	sys := New()
	err := sys.LoadROM(minimalROM("TESTGAME"))
	require.NoError(t, err)

	assert.Equal(t, "TESTGAME", sys.CartridgeTitle())
}

func TestLoadROMRejectsBadHeader(t *testing.T) {
	sys := New()

	err := sys.LoadROM([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
	assert.True(t, errors.Is(err, memory.ErrRomTooSmall))
}

func TestLoadROMRejectsUnsupportedMBC(t *testing.T) {
	sys := New()
	rom := minimalROM("BAD")
	rom[0x147] = 0xFE // not a classified cartridge type

	err := sys.LoadROM(rom)
	require.Error(t, err)
	assert.True(t, errors.Is(err, memory.ErrUnsupportedCartridge))
}

func TestSkipBootROM(t *testing.T) {
	sys := New()
	require.NoError(t, sys.LoadROM(minimalROM("X")))

	sys.SkipBootROM()

	assert.Equal(t, uint16(0x0100), sys.cpu.PC())
}

func TestResetPreservesCartridge(t *testing.T) {
	sys := New()
	require.NoError(t, sys.LoadROM(minimalROM("PERSIST")))
	sys.SkipBootROM()

	sys.Write(0xC000, 0x42) // WRAM byte, should be cleared by Reset
	sys.Reset()

	assert.Equal(t, "PERSIST", sys.CartridgeTitle())
	assert.Equal(t, uint16(0), sys.cpu.PC())
	assert.Equal(t, uint8(0x00), sys.Read(0xC000))
}

func TestStepAdvancesCyclesAndPC(t *testing.T) {
	sys := New()
	rom := minimalROM("NOPTEST")
	rom[0x100] = 0x00 // NOP
	rom[0x101] = 0x00 // NOP
	require.NoError(t, sys.LoadROM(rom))
	sys.SkipBootROM()

	cycles := sys.Step()

	assert.Equal(t, 4, cycles)
	assert.Equal(t, uint16(0x101), sys.cpu.PC())
}

func TestFrameAccumulatesWholeFrameOfCycles(t *testing.T) {
	sys := New()
	rom := minimalROM("FRAMETEST")
	for i := range rom[0x100:] {
		rom[0x100+i] = 0x00 // NOP forever
	}
	require.NoError(t, sys.LoadROM(rom))
	sys.SkipBootROM()

	sys.Frame()

	assert.Equal(t, 0, sys.cyclesBudget%4) // NOP is 4 cycles, budget carries the remainder exactly
}

func TestRAMRoundTrip(t *testing.T) {
	sys := New()
	require.NoError(t, sys.LoadROM(minimalROM("RAMTEST")))

	sys.Write(0xC000, 0xAB)
	sys.Write(0xC001, 0xCD)

	ram := sys.RAM()
	assert.Equal(t, uint8(0xAB), ram[0])
	assert.Equal(t, uint8(0xCD), ram[1])
}

func TestSetInput(t *testing.T) {
	sys := New()
	require.NoError(t, sys.LoadROM(minimalROM("INPUTTEST")))

	sys.Write(addr.P1, 0x10) // select action buttons (bit5=0, bit4=1)
	sys.SetInput(0x01)       // A pressed

	assert.Equal(t, uint8(0), sys.Read(addr.P1)&0x01)
}
