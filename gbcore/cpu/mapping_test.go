package cpu

import (
	"testing"

	"github.com/kbecker/gbcore/gbcore/memory"
	"github.com/stretchr/testify/assert"
)

// TestCBPlaneCycleCosts guards against double-counting the CB prefix fetch:
// the cost table entries already include it, so Step must not add a
// further 4 on top.
func TestCBPlaneCycleCosts(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint8 // byte following the 0xCB prefix
		expected int
	}{
		{"RLC B (register operand)", 0x00, 8},
		{"RLC (HL) (shift/rotate, memory operand)", 0x06, 16},
		{"BIT 0,(HL) (read-only, memory operand)", 0x46, 12},
		{"SET 0,(HL) (read-modify-write, memory operand)", 0xC6, 16},
		{"RES 0,B (register operand)", 0x80, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmu := memory.New()
			cpu := New(mmu)
			cpu.pc = 0xC000
			mmu.Write(0xC000, 0xCB)
			mmu.Write(0xC001, tt.opcode)

			cycles := cpu.Step()

			assert.Equal(t, tt.expected, cycles)
			assert.Equal(t, uint16(0xC002), cpu.pc)
		})
	}
}
