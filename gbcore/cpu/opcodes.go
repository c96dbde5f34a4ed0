package cpu

// Irregular base-plane opcodes: everything that doesn't fit the LD r,r' /
// ALU A,r / INC,DEC r / LD r,n families mapping.go generates by loop.

func opNOP(cpu *CPU) int { return 4 }

func opLD_BC_nn(cpu *CPU) int { cpu.setBC(cpu.readImmediateWord()); return 12 }
func opLD_DE_nn(cpu *CPU) int { cpu.setDE(cpu.readImmediateWord()); return 12 }
func opLD_HL_nn(cpu *CPU) int { cpu.setHL(cpu.readImmediateWord()); return 12 }
func opLD_SP_nn(cpu *CPU) int { cpu.sp = cpu.readImmediateWord(); return 12 }

func opLD_pBC_A(cpu *CPU) int { cpu.bus.Write(cpu.getBC(), cpu.a); return 8 }
func opLD_pDE_A(cpu *CPU) int { cpu.bus.Write(cpu.getDE(), cpu.a); return 8 }
func opLD_A_pBC(cpu *CPU) int { cpu.a = cpu.bus.Read(cpu.getBC()); return 8 }
func opLD_A_pDE(cpu *CPU) int { cpu.a = cpu.bus.Read(cpu.getDE()); return 8 }

func opLD_pHLI_A(cpu *CPU) int {
	hl := cpu.getHL()
	cpu.bus.Write(hl, cpu.a)
	cpu.setHL(hl + 1)
	return 8
}

func opLD_pHLD_A(cpu *CPU) int {
	hl := cpu.getHL()
	cpu.bus.Write(hl, cpu.a)
	cpu.setHL(hl - 1)
	return 8
}

func opLD_A_pHLI(cpu *CPU) int {
	hl := cpu.getHL()
	cpu.a = cpu.bus.Read(hl)
	cpu.setHL(hl + 1)
	return 8
}

func opLD_A_pHLD(cpu *CPU) int {
	hl := cpu.getHL()
	cpu.a = cpu.bus.Read(hl)
	cpu.setHL(hl - 1)
	return 8
}

func opINC_BC(cpu *CPU) int   { cpu.setBC(cpu.getBC() + 1); return 8 }
func opINC_DE(cpu *CPU) int   { cpu.setDE(cpu.getDE() + 1); return 8 }
func opINC_HL16(cpu *CPU) int { cpu.setHL(cpu.getHL() + 1); return 8 }
func opINC_SP(cpu *CPU) int   { cpu.sp++; return 8 }

func opDEC_BC(cpu *CPU) int   { cpu.setBC(cpu.getBC() - 1); return 8 }
func opDEC_DE(cpu *CPU) int   { cpu.setDE(cpu.getDE() - 1); return 8 }
func opDEC_HL16(cpu *CPU) int { cpu.setHL(cpu.getHL() - 1); return 8 }
func opDEC_SP(cpu *CPU) int   { cpu.sp--; return 8 }

func opADD_HL_BC(cpu *CPU) int { cpu.addToHL(cpu.getBC()); return 8 }
func opADD_HL_DE(cpu *CPU) int { cpu.addToHL(cpu.getDE()); return 8 }
func opADD_HL_HL(cpu *CPU) int { cpu.addToHL(cpu.getHL()); return 8 }
func opADD_HL_SP(cpu *CPU) int { cpu.addToHL(cpu.sp); return 8 }

func opLD_pnn_SP(cpu *CPU) int {
	address := cpu.readImmediateWord()
	cpu.bus.Write(address, uint8(cpu.sp))
	cpu.bus.Write(address+1, uint8(cpu.sp>>8))
	return 20
}

func opRLCA(cpu *CPU) int { cpu.a = cpu.rotateLeftCarry(cpu.a, false); return 4 }
func opRRCA(cpu *CPU) int { cpu.a = cpu.rotateRightCarry(cpu.a, false); return 4 }
func opRLA(cpu *CPU) int  { cpu.a = cpu.rotateLeftThroughCarry(cpu.a, false); return 4 }
func opRRA(cpu *CPU) int  { cpu.a = cpu.rotateRightThroughCarry(cpu.a, false); return 4 }

func opDAA(cpu *CPU) int { cpu.daa(); return 4 }
func opCPL(cpu *CPU) int { cpu.cpl(); return 4 }
func opSCF(cpu *CPU) int { cpu.scf(); return 4 }
func opCCF(cpu *CPU) int { cpu.ccf(); return 4 }

func opSTOP(cpu *CPU) int {
	cpu.readImmediate() // STOP's mandatory (and ignored) second byte
	return 4
}

func opHALT(cpu *CPU) int { cpu.halted = true; return 4 }

func opDI(cpu *CPU) int { cpu.interruptsEnabled = false; cpu.eiPending = false; return 4 }
func opEI(cpu *CPU) int { cpu.eiPending = true; return 4 }

func opJR(cpu *CPU) int { cpu.jr(); return 12 }

func opJR_NZ(cpu *CPU) int { return condJR(cpu, !cpu.isSetFlag(flagZ)) }
func opJR_Z(cpu *CPU) int  { return condJR(cpu, cpu.isSetFlag(flagZ)) }
func opJR_NC(cpu *CPU) int { return condJR(cpu, !cpu.isSetFlag(flagC)) }
func opJR_C(cpu *CPU) int  { return condJR(cpu, cpu.isSetFlag(flagC)) }

func condJR(cpu *CPU, condition bool) int {
	offset := cpu.readSignedImmediate()
	if !condition {
		return 8
	}
	cpu.pc = uint16(int32(cpu.pc) + int32(offset))
	return 12
}

func opJP(cpu *CPU) int    { cpu.jp(); return 16 }
func opJP_pHL(cpu *CPU) int { cpu.pc = cpu.getHL(); return 4 }

func opJP_NZ(cpu *CPU) int { return condJP(cpu, !cpu.isSetFlag(flagZ)) }
func opJP_Z(cpu *CPU) int  { return condJP(cpu, cpu.isSetFlag(flagZ)) }
func opJP_NC(cpu *CPU) int { return condJP(cpu, !cpu.isSetFlag(flagC)) }
func opJP_C(cpu *CPU) int  { return condJP(cpu, cpu.isSetFlag(flagC)) }

func condJP(cpu *CPU, condition bool) int {
	target := cpu.readImmediateWord()
	if !condition {
		return 12
	}
	cpu.pc = target
	return 16
}

func opCALL(cpu *CPU) int { cpu.call(); return 24 }

func opCALL_NZ(cpu *CPU) int { return condCall(cpu, !cpu.isSetFlag(flagZ)) }
func opCALL_Z(cpu *CPU) int  { return condCall(cpu, cpu.isSetFlag(flagZ)) }
func opCALL_NC(cpu *CPU) int { return condCall(cpu, !cpu.isSetFlag(flagC)) }
func opCALL_C(cpu *CPU) int  { return condCall(cpu, cpu.isSetFlag(flagC)) }

func condCall(cpu *CPU, condition bool) int {
	target := cpu.readImmediateWord()
	if !condition {
		return 12
	}
	cpu.pushStack(cpu.pc)
	cpu.pc = target
	return 24
}

func opRET(cpu *CPU) int  { cpu.ret(); return 16 }
func opRETI(cpu *CPU) int { cpu.interruptsEnabled = true; cpu.ret(); return 16 }

func opRET_NZ(cpu *CPU) int { return condRet(cpu, !cpu.isSetFlag(flagZ)) }
func opRET_Z(cpu *CPU) int  { return condRet(cpu, cpu.isSetFlag(flagZ)) }
func opRET_NC(cpu *CPU) int { return condRet(cpu, !cpu.isSetFlag(flagC)) }
func opRET_C(cpu *CPU) int  { return condRet(cpu, cpu.isSetFlag(flagC)) }

func condRet(cpu *CPU, condition bool) int {
	if !condition {
		return 8
	}
	cpu.ret()
	return 20
}

func rstFunc(vector uint16) opcodeFunc {
	return func(cpu *CPU) int {
		cpu.rst(vector)
		return 16
	}
}

func opPOP_BC(cpu *CPU) int { cpu.setBC(cpu.popStack()); return 12 }
func opPOP_DE(cpu *CPU) int { cpu.setDE(cpu.popStack()); return 12 }
func opPOP_HL(cpu *CPU) int { cpu.setHL(cpu.popStack()); return 12 }
func opPOP_AF(cpu *CPU) int { cpu.setAF(cpu.popStack()); return 12 }

func opPUSH_BC(cpu *CPU) int { cpu.pushStack(cpu.getBC()); return 16 }
func opPUSH_DE(cpu *CPU) int { cpu.pushStack(cpu.getDE()); return 16 }
func opPUSH_HL(cpu *CPU) int { cpu.pushStack(cpu.getHL()); return 16 }
func opPUSH_AF(cpu *CPU) int { cpu.pushStack(cpu.getAF()); return 16 }

func opADD_A_n(cpu *CPU) int { cpu.addToA(cpu.readImmediate()); return 8 }
func opADC_A_n(cpu *CPU) int { cpu.adc(cpu.readImmediate()); return 8 }
func opSUB_n(cpu *CPU) int   { cpu.sub(cpu.readImmediate()); return 8 }
func opSBC_A_n(cpu *CPU) int { cpu.sbc(cpu.readImmediate()); return 8 }
func opAND_n(cpu *CPU) int   { cpu.and(cpu.readImmediate()); return 8 }
func opXOR_n(cpu *CPU) int   { cpu.xor(cpu.readImmediate()); return 8 }
func opOR_n(cpu *CPU) int    { cpu.or(cpu.readImmediate()); return 8 }
func opCP_n(cpu *CPU) int    { cpu.cp(cpu.readImmediate()); return 8 }

func opLDH_pn_A(cpu *CPU) int {
	offset := cpu.readImmediate()
	cpu.bus.Write(0xFF00+uint16(offset), cpu.a)
	return 12
}

func opLDH_A_pn(cpu *CPU) int {
	offset := cpu.readImmediate()
	cpu.a = cpu.bus.Read(0xFF00 + uint16(offset))
	return 12
}

func opLD_pC_A(cpu *CPU) int { cpu.bus.Write(0xFF00+uint16(cpu.c), cpu.a); return 8 }
func opLD_A_pC(cpu *CPU) int { cpu.a = cpu.bus.Read(0xFF00 + uint16(cpu.c)); return 8 }

func opLD_pnn_A(cpu *CPU) int {
	cpu.bus.Write(cpu.readImmediateWord(), cpu.a)
	return 16
}

func opLD_A_pnn(cpu *CPU) int {
	cpu.a = cpu.bus.Read(cpu.readImmediateWord())
	return 16
}

func opADD_SP_e(cpu *CPU) int {
	offset := cpu.readSignedImmediate()
	cpu.sp = cpu.addSPSigned(offset)
	return 16
}

func opLD_HL_SPe(cpu *CPU) int {
	offset := cpu.readSignedImmediate()
	cpu.setHL(cpu.addSPSigned(offset))
	return 12
}

func opLD_SP_HL(cpu *CPU) int { cpu.sp = cpu.getHL(); return 8 }

// opIllegal covers the eleven undefined base-plane opcodes. Real hardware
// locks up; this core treats them as 4-cycle no-ops (spec §7).
func opIllegal(cpu *CPU) int { return 4 }
