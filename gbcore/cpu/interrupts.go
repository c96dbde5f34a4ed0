package cpu

import "github.com/kbecker/gbcore/gbcore/addr"

// handleInterrupts checks IE&IF for a pending interrupt, in priority order
// VBlank > LCDSTAT > Timer > Serial > Joypad. It reports whether one is
// pending regardless of IME (the caller needs that to wake a halted CPU),
// but only dispatches it - push PC, jump to the vector, clear the IF bit,
// clear IME, spend 20 T-cycles - when IME is set.
func (cpu *CPU) handleInterrupts() bool {
	ifReg := cpu.bus.Read(addr.IF)
	ieReg := cpu.bus.Read(addr.IE)
	masked := ifReg & ieReg & 0x1F
	if masked == 0 {
		return false
	}

	if !cpu.interruptsEnabled {
		return true
	}

	cpu.interruptsEnabled = false
	cpu.halted = false

	var bitIndex uint8
	var vector uint16
	switch {
	case masked&0x01 != 0:
		bitIndex, vector = 0, 0x40
	case masked&0x02 != 0:
		bitIndex, vector = 1, 0x48
	case masked&0x04 != 0:
		bitIndex, vector = 2, 0x50
	case masked&0x08 != 0:
		bitIndex, vector = 3, 0x58
	default:
		bitIndex, vector = 4, 0x60
	}

	cpu.pushStack(cpu.pc)
	cpu.pc = vector
	cpu.bus.Write(addr.IF, ifReg&^(1<<bitIndex))
	cpu.cycles += 20

	return true
}
