package cpu

// buildCBTable fills the CB-prefixed plane. It is fully regular: x = bits
// 6-7 select the instruction group, y = bits 3-5 select the operation (for
// the rotate/shift group) or the bit index (for BIT/RES/SET), z = bits 0-2
// select the operand register, 6 meaning (HL).
func buildCBTable() {
	shiftOps := [8]func(cpu *CPU, v uint8) uint8{
		func(cpu *CPU, v uint8) uint8 { return cpu.rotateLeftCarry(v, true) },
		func(cpu *CPU, v uint8) uint8 { return cpu.rotateRightCarry(v, true) },
		func(cpu *CPU, v uint8) uint8 { return cpu.rotateLeftThroughCarry(v, true) },
		func(cpu *CPU, v uint8) uint8 { return cpu.rotateRightThroughCarry(v, true) },
		func(cpu *CPU, v uint8) uint8 { return cpu.sla(v) },
		func(cpu *CPU, v uint8) uint8 { return cpu.sra(v) },
		func(cpu *CPU, v uint8) uint8 { return cpu.swap(v) },
		func(cpu *CPU, v uint8) uint8 { return cpu.srl(v) },
	}

	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			reg := z
			cost := 8
			if reg == 6 {
				cost = 16
			}

			op := shiftOps[y]
			cbOpcodes[0x00|(y<<3)|z] = func(cpu *CPU) int {
				cpu.setReg8(reg, op(cpu, cpu.getReg8(reg)))
				return cost
			}

			bitIndex := y
			bitCost := 8
			if reg == 6 {
				bitCost = 12
			}
			cbOpcodes[0x40|(y<<3)|z] = func(cpu *CPU) int {
				cpu.bitTest(bitIndex, cpu.getReg8(reg))
				return bitCost
			}

			cbOpcodes[0x80|(y<<3)|z] = func(cpu *CPU) int {
				cpu.setReg8(reg, resBit(bitIndex, cpu.getReg8(reg)))
				return cost
			}

			cbOpcodes[0xC0|(y<<3)|z] = func(cpu *CPU) int {
				cpu.setReg8(reg, setBit(bitIndex, cpu.getReg8(reg)))
				return cost
			}
		}
	}
}
