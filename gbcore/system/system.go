// Package system composes the CPU, MMU and MBC into the single value a
// caller drives: load a ROM, step it instruction by instruction or a whole
// frame at a time, and observe or inject state for RL-style harnesses.
package system

import (
	"github.com/kbecker/gbcore/gbcore/cpu"
	"github.com/kbecker/gbcore/gbcore/memory"
)

// cyclesPerFrame is the DMG's T-cycles per video frame (154 scanlines of
// 456 T-cycles each), independent of the PPU this core doesn't implement.
const cyclesPerFrame = 70224

// System is a single emulated Game Boy: one CPU, one MMU, the cartridge
// currently loaded. It is single-threaded and non-blocking; parallelism
// comes from running N independent Systems on N goroutines, never from
// sharing one.
type System struct {
	cpu cpu.CPU
	mmu memory.MMU
	cart *memory.Cartridge

	cyclesBudget int
}

// New returns a System with no cartridge loaded, powered off: every CPU
// register and flag at zero and a freshly initialized MMU (IF and IE read
// 0xE0, since their upper three bits always read as 1).
func New() *System {
	sys := &System{}
	sys.mmu = *memory.New()
	c := cpu.New(&sys.mmu)
	c.Reset()
	sys.cpu = *c
	return sys
}

// LoadROM inspects data's header to pick an MBC and bank counts, and wires
// it in as the running cartridge. data is borrowed, not copied; the caller
// must keep it alive for as long as this System uses it.
func (sys *System) LoadROM(data []byte) error {
	cart, err := memory.NewCartridge(data)
	if err != nil {
		return err
	}
	sys.cart = cart
	sys.mmu = *memory.NewWithCartridge(cart)
	return nil
}

// SkipBootROM applies the documented post-boot-ROM CPU register values, as
// if the cartridge's own code started running directly. IO registers are
// not touched; they keep whatever values the MMU currently holds.
func (sys *System) SkipBootROM() {
	sys.cpu.SkipBootROM()
}

// Reset reboots the System: CPU registers return to their post-power-on
// zero state and the MMU/MBC reinitialize, preserving whichever cartridge
// (if any) was loaded.
func (sys *System) Reset() {
	if sys.cart != nil {
		sys.mmu = *memory.NewWithCartridge(sys.cart)
	} else {
		sys.mmu = *memory.New()
	}
	sys.cpu.Reset()
	sys.cyclesBudget = 0
}

// Step executes one CPU instruction (or the equivalent HALT/interrupt
// micro-step) and advances the Timer by its T-cycle cost, returning that
// cost.
func (sys *System) Step() int {
	cycles := sys.cpu.Step()
	sys.mmu.Tick(cycles)
	return cycles
}

// Frame runs Step until the running cycle budget reaches a full video
// frame's worth of T-cycles, then carries the remainder into the next
// frame.
func (sys *System) Frame() {
	for sys.cyclesBudget < cyclesPerFrame {
		sys.cyclesBudget += sys.Step()
	}
	sys.cyclesBudget -= cyclesPerFrame
}

// SetInput stores the active-high joypad mask (bit0=A ... bit7=Down).
func (sys *System) SetInput(mask uint8) {
	sys.mmu.SetInput(mask)
}

// Read and Write expose the full address space for observation/injection,
// e.g. a debugger or test harness peeking at state outside of Step.
func (sys *System) Read(address uint16) uint8 {
	return sys.mmu.Read(address)
}

func (sys *System) Write(address uint16, value uint8) {
	sys.mmu.Write(address, value)
}

// RAM returns a contiguous, allocation-free view of WRAM followed by HRAM,
// for RL-style feature extraction.
func (sys *System) RAM() []byte {
	return sys.mmu.RAM()
}

// CartridgeTitle returns the loaded cartridge's header title, or "" if no
// cartridge has been loaded.
func (sys *System) CartridgeTitle() string {
	if sys.cart == nil {
		return ""
	}
	return sys.cart.Title()
}
