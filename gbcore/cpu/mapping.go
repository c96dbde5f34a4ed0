package cpu

// opcodeFunc executes one decoded instruction and returns its T-cycle cost.
type opcodeFunc func(cpu *CPU) int

var baseOpcodes [256]opcodeFunc
var cbOpcodes [256]opcodeFunc

func init() {
	buildBaseTable()
	buildCBTable()
}

// buildBaseTable fills the base-plane dispatch table. The regular families
// (LD r,r'; ALU A,r; INC/DEC r; LD r,n) are generated by looping over the
// 3-bit register-index encoding; everything else is wired to its explicit
// handler in opcodes.go.
func buildBaseTable() {
	for i := range baseOpcodes {
		baseOpcodes[i] = opIllegal
	}

	// LD r,r' : 0x40-0x7F, y = dest index, z = src index. 0x76 is HALT.
	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			opcode := 0x40 | (y << 3) | z
			if y == 6 && z == 6 {
				continue // HALT, wired explicitly below
			}
			dest, src := y, z
			cost := 4
			if dest == 6 || src == 6 {
				cost = 8
			}
			baseOpcodes[opcode] = func(cpu *CPU) int {
				cpu.setReg8(dest, cpu.getReg8(src))
				return cost
			}
		}
	}

	// ALU A,r : 0x80-0xBF, y = operation (add,adc,sub,sbc,and,xor,or,cp), z = src.
	aluOps := [8]func(cpu *CPU, value uint8){
		func(cpu *CPU, v uint8) { cpu.addToA(v) },
		func(cpu *CPU, v uint8) { cpu.adc(v) },
		func(cpu *CPU, v uint8) { cpu.sub(v) },
		func(cpu *CPU, v uint8) { cpu.sbc(v) },
		func(cpu *CPU, v uint8) { cpu.and(v) },
		func(cpu *CPU, v uint8) { cpu.xor(v) },
		func(cpu *CPU, v uint8) { cpu.or(v) },
		func(cpu *CPU, v uint8) { cpu.cp(v) },
	}
	for y := uint8(0); y < 8; y++ {
		for z := uint8(0); z < 8; z++ {
			opcode := 0x80 | (y << 3) | z
			op := aluOps[y]
			src := z
			cost := 4
			if src == 6 {
				cost = 8
			}
			baseOpcodes[opcode] = func(cpu *CPU) int {
				op(cpu, cpu.getReg8(src))
				return cost
			}
		}
	}

	// INC r / DEC r / LD r,n : opcode = base | (ry<<3), ry the 3-bit index.
	for ry := uint8(0); ry < 8; ry++ {
		idx := ry
		incCost, decCost, ldCost := 4, 4, 8
		if idx == 6 {
			incCost, decCost, ldCost = 12, 12, 12
		}
		baseOpcodes[0x04|(ry<<3)] = func(cpu *CPU) int { cpu.inc8(idx); return incCost }
		baseOpcodes[0x05|(ry<<3)] = func(cpu *CPU) int { cpu.dec8(idx); return decCost }
		baseOpcodes[0x06|(ry<<3)] = func(cpu *CPU) int {
			cpu.setReg8(idx, cpu.readImmediate())
			return ldCost
		}
	}

	// HALT
	baseOpcodes[0x76] = opHALT

	// misc / control flow / 16-bit loads, arithmetic and stack ops.
	baseOpcodes[0x00] = opNOP
	baseOpcodes[0x01] = opLD_BC_nn
	baseOpcodes[0x02] = opLD_pBC_A
	baseOpcodes[0x03] = opINC_BC
	baseOpcodes[0x07] = opRLCA
	baseOpcodes[0x08] = opLD_pnn_SP
	baseOpcodes[0x09] = opADD_HL_BC
	baseOpcodes[0x0A] = opLD_A_pBC
	baseOpcodes[0x0B] = opDEC_BC
	baseOpcodes[0x0F] = opRRCA

	baseOpcodes[0x10] = opSTOP
	baseOpcodes[0x11] = opLD_DE_nn
	baseOpcodes[0x12] = opLD_pDE_A
	baseOpcodes[0x13] = opINC_DE
	baseOpcodes[0x17] = opRLA
	baseOpcodes[0x18] = opJR
	baseOpcodes[0x19] = opADD_HL_DE
	baseOpcodes[0x1A] = opLD_A_pDE
	baseOpcodes[0x1B] = opDEC_DE
	baseOpcodes[0x1F] = opRRA

	baseOpcodes[0x20] = opJR_NZ
	baseOpcodes[0x21] = opLD_HL_nn
	baseOpcodes[0x22] = opLD_pHLI_A
	baseOpcodes[0x23] = opINC_HL16
	baseOpcodes[0x27] = opDAA
	baseOpcodes[0x28] = opJR_Z
	baseOpcodes[0x29] = opADD_HL_HL
	baseOpcodes[0x2A] = opLD_A_pHLI
	baseOpcodes[0x2B] = opDEC_HL16
	baseOpcodes[0x2F] = opCPL

	baseOpcodes[0x30] = opJR_NC
	baseOpcodes[0x31] = opLD_SP_nn
	baseOpcodes[0x32] = opLD_pHLD_A
	baseOpcodes[0x33] = opINC_SP
	baseOpcodes[0x37] = opSCF
	baseOpcodes[0x38] = opJR_C
	baseOpcodes[0x39] = opADD_HL_SP
	baseOpcodes[0x3A] = opLD_A_pHLD
	baseOpcodes[0x3B] = opDEC_SP
	baseOpcodes[0x3F] = opCCF

	baseOpcodes[0xC0] = opRET_NZ
	baseOpcodes[0xC1] = opPOP_BC
	baseOpcodes[0xC2] = opJP_NZ
	baseOpcodes[0xC3] = opJP
	baseOpcodes[0xC4] = opCALL_NZ
	baseOpcodes[0xC5] = opPUSH_BC
	baseOpcodes[0xC6] = opADD_A_n
	baseOpcodes[0xC7] = rstFunc(0x00)
	baseOpcodes[0xC8] = opRET_Z
	baseOpcodes[0xC9] = opRET
	baseOpcodes[0xCA] = opJP_Z
	// 0xCB is intercepted by Step before indexing this table.
	baseOpcodes[0xCC] = opCALL_Z
	baseOpcodes[0xCD] = opCALL
	baseOpcodes[0xCE] = opADC_A_n
	baseOpcodes[0xCF] = rstFunc(0x08)

	baseOpcodes[0xD0] = opRET_NC
	baseOpcodes[0xD1] = opPOP_DE
	baseOpcodes[0xD2] = opJP_NC
	baseOpcodes[0xD4] = opCALL_NC
	baseOpcodes[0xD5] = opPUSH_DE
	baseOpcodes[0xD6] = opSUB_n
	baseOpcodes[0xD7] = rstFunc(0x10)
	baseOpcodes[0xD8] = opRET_C
	baseOpcodes[0xD9] = opRETI
	baseOpcodes[0xDA] = opJP_C
	baseOpcodes[0xDC] = opCALL_C
	baseOpcodes[0xDE] = opSBC_A_n
	baseOpcodes[0xDF] = rstFunc(0x18)

	baseOpcodes[0xE0] = opLDH_pn_A
	baseOpcodes[0xE1] = opPOP_HL
	baseOpcodes[0xE2] = opLD_pC_A
	baseOpcodes[0xE5] = opPUSH_HL
	baseOpcodes[0xE6] = opAND_n
	baseOpcodes[0xE7] = rstFunc(0x20)
	baseOpcodes[0xE8] = opADD_SP_e
	baseOpcodes[0xE9] = opJP_pHL
	baseOpcodes[0xEA] = opLD_pnn_A
	baseOpcodes[0xEE] = opXOR_n
	baseOpcodes[0xEF] = rstFunc(0x28)

	baseOpcodes[0xF0] = opLDH_A_pn
	baseOpcodes[0xF1] = opPOP_AF
	baseOpcodes[0xF2] = opLD_A_pC
	baseOpcodes[0xF3] = opDI
	baseOpcodes[0xF5] = opPUSH_AF
	baseOpcodes[0xF6] = opOR_n
	baseOpcodes[0xF7] = rstFunc(0x30)
	baseOpcodes[0xF8] = opLD_HL_SPe
	baseOpcodes[0xF9] = opLD_SP_HL
	baseOpcodes[0xFA] = opLD_A_pnn
	baseOpcodes[0xFB] = opEI
	baseOpcodes[0xFE] = opCP_n
	baseOpcodes[0xFF] = rstFunc(0x38)
}
