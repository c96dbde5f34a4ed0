package memory

import (
	"log/slog"

	"github.com/kbecker/gbcore/gbcore/addr"
	"github.com/kbecker/gbcore/gbcore/bit"
	"github.com/kbecker/gbcore/gbcore/serial"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionStub
	regionERAM
	regionWRAM
	regionEcho
	regionIO
)

const (
	wramSize = 0x2000
	hramSize = 0x7F
)

// MMU routes every 16-bit address to ROM/WRAM/HRAM/ERAM/IO and hosts the
// I/O register storage itself. Every access is total: it always returns or
// accepts a byte.
type MMU struct {
	rom []byte // borrowed from the loaded Cartridge, never copied
	mbc MBC

	eram [0x8000]byte
	// ram holds WRAM (offset 0) immediately followed by HRAM (offset
	// wramSize), so RAM() can return a contiguous, allocation-free view.
	ram [wramSize + hramSize]byte

	ifReg uint8
	ieReg uint8

	p1Select    uint8 // select bits as last written (bits 4-5)
	joypadState uint8 // active-low shadow of SetInput's mask, spec §6 layout

	dmaReg uint8 // OAM DMA source register, stubbed pass-through (§9 Open Question a)

	serial *serial.Port
	timer  Timer

	regionMap    [256]memRegion
	hasCartridge bool
}

// New creates an MMU with no cartridge loaded: ROM and ERAM reads return
// 0xFF, equivalent to powering on a Game Boy with no cartridge inserted.
func New() *MMU {
	m := &MMU{
		joypadState: 0xFF,
		serial:      serial.New(),
		ifReg:       0xE0,
		ieReg:       0xE0,
	}
	initRegionMap(m)
	return m
}

// NewWithCartridge builds an MMU with the given cartridge's ROM borrowed in
// and its MBC initialized from the header-derived kind and bank counts.
func NewWithCartridge(cart *Cartridge) *MMU {
	m := New()
	m.rom = cart.data
	m.hasCartridge = true
	m.mbc = NewMBC(cart.mbcKind, len(cart.data), cart.ramBankCount)
	return m
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionStub // VRAM: out of scope, stubbed
	}
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionERAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	m.regionMap[0xFE] = regionStub // OAM + unused, both out of scope
	m.regionMap[0xFF] = regionIO
}

// Tick advances the timer by cycles T-cycles, the only MMU-owned state that
// needs to track elapsed time between CPU steps.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles, &m.ifReg)
}

// RequestInterrupt sets the given interrupt's bit in IF. addr.Interrupt
// values are already single-bit masks, so this is a plain OR.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.ifReg |= uint8(interrupt)
}

// RAM returns a contiguous, allocation-free view of WRAM followed by HRAM
// for RL feature extraction (spec §6): WRAM at offset 0, HRAM at offset
// 0x2000.
func (m *MMU) RAM() []byte {
	return m.ram[:]
}

// SetInput stores the active-high input mask inverted, matching the
// active-low P1 exposure (spec §6 bit layout: bit0=A ... bit7=Down).
func (m *MMU) SetInput(mask uint8) {
	m.joypadState = ^mask
}

func (m *MMU) Read(address uint16) uint8 {
	switch m.regionMap[address>>8] {
	case regionROM:
		if !m.hasCartridge {
			slog.Warn("read from rom with no cartridge loaded", "addr", address)
			return 0xFF
		}
		return m.mbc.ReadROM(m.rom, address)
	case regionStub:
		return 0xFF
	case regionERAM:
		if !m.hasCartridge {
			slog.Warn("read from external ram with no cartridge loaded", "addr", address)
			return 0xFF
		}
		return m.mbc.ReadRAM(m.eram[:], address)
	case regionWRAM:
		return m.ram[address-0xC000]
	case regionEcho:
		return m.ram[address-0x2000-0xC000]
	case regionIO:
		return m.readIO(address)
	default:
		return 0xFF
	}
}

func (m *MMU) Write(address uint16, value uint8) {
	switch m.regionMap[address>>8] {
	case regionROM:
		if !m.hasCartridge {
			slog.Warn("write to rom with no cartridge loaded", "addr", address, "value", value)
			return
		}
		m.mbc.WriteReg(address, value)
	case regionStub:
		// ignored
	case regionERAM:
		if !m.hasCartridge {
			slog.Warn("write to external ram with no cartridge loaded", "addr", address, "value", value)
			return
		}
		m.mbc.WriteRAM(m.eram[:], address, value)
	case regionWRAM:
		m.ram[address-0xC000] = value
	case regionEcho:
		m.ram[address-0x2000-0xC000] = value
	case regionIO:
		m.writeIO(address, value)
	}
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == addr.P1:
		return m.readJoypad()
	case address == addr.SB || address == addr.SC:
		return m.serial.Read(address)
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		return m.timer.Read(address)
	case address == addr.IF:
		return m.ifReg
	case address == addr.IE:
		return m.ieReg
	case address == addr.DMA:
		return m.dmaReg
	case address >= 0xFF80 && address <= 0xFFFE:
		return m.ram[wramSize+(address-0xFF80)]
	default:
		return 0xFF
	}
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == addr.P1:
		m.p1Select = value & 0x30
	case address == addr.SB || address == addr.SC:
		if m.serial.Write(address, value) {
			m.RequestInterrupt(addr.SerialInterrupt)
		}
	case address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC:
		m.timer.Write(address, value, &m.ifReg)
	case address == addr.IF:
		m.ifReg = value | 0xE0
	case address == addr.IE:
		m.ieReg = value | 0xE0
	case address == addr.DMA:
		m.dmaReg = value
	case address >= 0xFF80 && address <= 0xFFFE:
		m.ram[wramSize+(address-0xFF80)] = value
	default:
		// remaining IO stubs (APU/LCD ranges): writes ignored
	}
}

// readJoypad resolves P1: the selected row's four lines read as the
// inverted (active-low) button state, bits 6-7 always read as 1.
func (m *MMU) readJoypad() uint8 {
	result := uint8(0xC0) | m.p1Select

	selectDpad := !bit.IsSet(4, m.p1Select)
	selectButtons := !bit.IsSet(5, m.p1Select)

	buttons := m.joypadState & 0x0F
	dpad := (m.joypadState >> 4) & 0x0F

	switch {
	case selectButtons && !selectDpad:
		result |= buttons
	case selectDpad && !selectButtons:
		result |= dpad
	case selectButtons && selectDpad:
		result |= buttons & dpad
	default:
		result |= 0x0F
	}

	return result
}
