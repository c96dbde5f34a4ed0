// Package cpu implements the Sharp SM83 instruction set: register file,
// flag semantics, interrupt servicing, HALT/STOP, and the two 256-entry
// opcode-dispatch tables.
package cpu

import (
	"github.com/kbecker/gbcore/gbcore/bit"
	"github.com/kbecker/gbcore/gbcore/memory"
)

// flag names a bit position in F. The lower nibble of F is never assigned
// through these helpers, keeping spec's "low nibble always zero" invariant.
type flag uint8

const (
	flagZ flag = 7
	flagN flag = 6
	flagH flag = 5
	flagC flag = 4
)

// CPU holds the SM83 register file and the interrupt/halt state machine.
// It never allocates; every side effect is a register write or a bus
// access through its MMU.
type CPU struct {
	a, b, c, d, e, h, l, f uint8
	sp, pc                 uint16

	bus *memory.MMU

	currentOpcode uint16 // 0x00-0xFF base plane, 0xCB00-0xCBFF CB plane

	interruptsEnabled bool // IME
	eiPending         bool // EI's one-instruction delay
	halted            bool
	haltBug           bool

	cycles uint64
}

// New returns a CPU wired to bus and initialized to the post-boot-ROM
// register state (spec §3 Lifecycle's skip_boot_rom values), which is the
// sane default for driving the CPU package on its own.
func New(bus *memory.MMU) *CPU {
	cpu := &CPU{bus: bus}
	cpu.SkipBootROM()
	return cpu
}

// Reset powers the CPU off: every register and flag returns to zero.
func (cpu *CPU) Reset() {
	*cpu = CPU{bus: cpu.bus}
}

// SkipBootROM applies the documented post-boot-ROM register values.
func (cpu *CPU) SkipBootROM() {
	cpu.a, cpu.f = 0x01, 0xB0
	cpu.b, cpu.c = 0x00, 0x13
	cpu.d, cpu.e = 0x00, 0xD8
	cpu.h, cpu.l = 0x01, 0x4D
	cpu.sp = 0xFFFE
	cpu.pc = 0x0100
	cpu.interruptsEnabled = false
	cpu.eiPending = false
	cpu.halted = false
	cpu.haltBug = false
}

// PC returns the current program counter, for observation/injection.
func (cpu *CPU) PC() uint16 { return cpu.pc }

// SetPC overrides the program counter, for observation/injection.
func (cpu *CPU) SetPC(pc uint16) { cpu.pc = pc }

// Cycles returns the running total of T-cycles elapsed.
func (cpu *CPU) Cycles() uint64 { return cpu.cycles }

func (cpu *CPU) setFlag(f flag)     { cpu.f = bit.Set(uint8(f), cpu.f) }
func (cpu *CPU) resetFlag(f flag)   { cpu.f = bit.Reset(uint8(f), cpu.f) }
func (cpu *CPU) isSetFlag(f flag) bool { return bit.IsSet(uint8(f), cpu.f) }

func (cpu *CPU) setFlagToCondition(f flag, condition bool) {
	if condition {
		cpu.setFlag(f)
	} else {
		cpu.resetFlag(f)
	}
}

func (cpu *CPU) getAF() uint16 { return bit.Combine(cpu.a, cpu.f) }
func (cpu *CPU) setAF(v uint16) {
	cpu.a = bit.High(v)
	cpu.f = bit.Low(v) & 0xF0
}

func (cpu *CPU) getBC() uint16  { return bit.Combine(cpu.b, cpu.c) }
func (cpu *CPU) setBC(v uint16) { cpu.b, cpu.c = bit.High(v), bit.Low(v) }

func (cpu *CPU) getDE() uint16  { return bit.Combine(cpu.d, cpu.e) }
func (cpu *CPU) setDE(v uint16) { cpu.d, cpu.e = bit.High(v), bit.Low(v) }

func (cpu *CPU) getHL() uint16  { return bit.Combine(cpu.h, cpu.l) }
func (cpu *CPU) setHL(v uint16) { cpu.h, cpu.l = bit.High(v), bit.Low(v) }

// getReg8/setReg8 resolve the 3-bit operand index shared by most of the
// base plane and all of the CB plane: 0=B,1=C,2=D,3=E,4=H,5=L,6=(HL),7=A.
func (cpu *CPU) getReg8(idx uint8) uint8 {
	switch idx {
	case 0:
		return cpu.b
	case 1:
		return cpu.c
	case 2:
		return cpu.d
	case 3:
		return cpu.e
	case 4:
		return cpu.h
	case 5:
		return cpu.l
	case 6:
		return cpu.bus.Read(cpu.getHL())
	default:
		return cpu.a
	}
}

func (cpu *CPU) setReg8(idx uint8, value uint8) {
	switch idx {
	case 0:
		cpu.b = value
	case 1:
		cpu.c = value
	case 2:
		cpu.d = value
	case 3:
		cpu.e = value
	case 4:
		cpu.h = value
	case 5:
		cpu.l = value
	case 6:
		cpu.bus.Write(cpu.getHL(), value)
	default:
		cpu.a = value
	}
}

func (cpu *CPU) readImmediate() uint8 {
	v := cpu.bus.Read(cpu.pc)
	cpu.pc++
	return v
}

func (cpu *CPU) readSignedImmediate() int8 {
	return int8(cpu.readImmediate())
}

func (cpu *CPU) readImmediateWord() uint16 {
	lo := cpu.readImmediate()
	hi := cpu.readImmediate()
	return bit.Combine(hi, lo)
}

// pushStack writes v's high byte then its low byte, two writes descending
// SP by one each, per spec's "two memory writes, MSB first".
func (cpu *CPU) pushStack(v uint16) {
	cpu.sp--
	cpu.bus.Write(cpu.sp, bit.High(v))
	cpu.sp--
	cpu.bus.Write(cpu.sp, bit.Low(v))
}

func (cpu *CPU) popStack() uint16 {
	lo := cpu.bus.Read(cpu.sp)
	cpu.sp++
	hi := cpu.bus.Read(cpu.sp)
	cpu.sp++
	return bit.Combine(hi, lo)
}

// Decode peeks the opcode at pc (and, for a CB prefix, the byte after it)
// without advancing pc, recording it as currentOpcode for Step to dispatch
// and consume.
func Decode(cpu *CPU) uint16 {
	b := cpu.bus.Read(cpu.pc)
	if b != 0xCB {
		cpu.currentOpcode = uint16(b)
		return cpu.currentOpcode
	}

	next := cpu.bus.Read(cpu.pc + 1)
	cpu.currentOpcode = 0xCB00 | uint16(next)
	return cpu.currentOpcode
}

// Step executes one instruction, or the equivalent micro-step when halted
// or an interrupt is serviced, and returns the T-cycles consumed.
func (cpu *CPU) Step() int {
	startCycles := cpu.cycles

	// Service using the IME as it stood before this step: EI's enable only
	// takes effect for the step after the one following EI, so the
	// instruction right after EI (and a DI right after EI) never sees it.
	imeBefore := cpu.interruptsEnabled
	pending := cpu.handleInterrupts()

	if cpu.eiPending {
		cpu.eiPending = false
		cpu.interruptsEnabled = true
	}

	if imeBefore && pending {
		return int(cpu.cycles - startCycles)
	}

	if cpu.halted {
		if pending {
			cpu.halted = false
			if !cpu.interruptsEnabled {
				cpu.haltBug = true
			}
		} else {
			cpu.cycles += 4
			return int(cpu.cycles - startCycles)
		}
	}

	opcode := Decode(cpu)
	cpu.pc++

	var cycles int
	if opcode >= 0xCB00 {
		cpu.pc++
		cycles = cbOpcodes[opcode&0xFF](cpu)
	} else {
		cycles = baseOpcodes[opcode](cpu)
		if cpu.haltBug {
			cpu.haltBug = false
			cpu.pc--
		}
	}

	cpu.cycles += uint64(cycles)
	return int(cpu.cycles - startCycles)
}
