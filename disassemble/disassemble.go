// Package disassemble renders a single decoded instruction as text, the way
// every 6502 core in this corpus ships a companion disassembler for
// debugging and trace logs.
package disassemble

import (
	"fmt"

	"github.com/Hashim-K/NES-Emulator/cpu"
	"github.com/Hashim-K/NES-Emulator/memory"
)

var mnemonics = map[cpu.Kind]string{
	cpu.KindNOP: "NOP", cpu.KindLDA: "LDA", cpu.KindLDX: "LDX", cpu.KindLDY: "LDY",
	cpu.KindSTA: "STA", cpu.KindSTX: "STX", cpu.KindSTY: "STY",
	cpu.KindTAX: "TAX", cpu.KindTAY: "TAY", cpu.KindTXA: "TXA", cpu.KindTYA: "TYA",
	cpu.KindTSX: "TSX", cpu.KindTXS: "TXS",
	cpu.KindPHA: "PHA", cpu.KindPHP: "PHP", cpu.KindPLA: "PLA", cpu.KindPLP: "PLP",
	cpu.KindINC: "INC", cpu.KindINX: "INX", cpu.KindINY: "INY",
	cpu.KindDEC: "DEC", cpu.KindDEX: "DEX", cpu.KindDEY: "DEY",
	cpu.KindADC: "ADC", cpu.KindSBC: "SBC",
	cpu.KindAND: "AND", cpu.KindORA: "ORA", cpu.KindEOR: "EOR", cpu.KindBIT: "BIT",
	cpu.KindASL: "ASL", cpu.KindLSR: "LSR", cpu.KindROL: "ROL", cpu.KindROR: "ROR",
	cpu.KindCMP: "CMP", cpu.KindCPX: "CPX", cpu.KindCPY: "CPY",
	cpu.KindBCC: "BCC", cpu.KindBCS: "BCS", cpu.KindBEQ: "BEQ", cpu.KindBMI: "BMI",
	cpu.KindBNE: "BNE", cpu.KindBPL: "BPL", cpu.KindBVC: "BVC", cpu.KindBVS: "BVS",
	cpu.KindCLC: "CLC", cpu.KindSEC: "SEC", cpu.KindCLD: "CLD", cpu.KindSED: "SED",
	cpu.KindCLI: "CLI", cpu.KindSEI: "SEI", cpu.KindCLV: "CLV",
	cpu.KindJMP: "JMP", cpu.KindJSR: "JSR", cpu.KindRTS: "RTS",
	cpu.KindBRK: "BRK", cpu.KindRTI: "RTI",
	cpu.KindSLO: "SLO", cpu.KindRLA: "RLA", cpu.KindSRE: "SRE", cpu.KindRRA: "RRA",
	cpu.KindSAX: "SAX", cpu.KindLAX: "LAX", cpu.KindDCP: "DCP", cpu.KindISC: "ISC",
	cpu.KindANC: "ANC", cpu.KindALR: "ALR", cpu.KindARR: "ARR", cpu.KindANE: "ANE",
	cpu.KindLXA: "LXA", cpu.KindLAS: "LAS", cpu.KindSBX: "SBX",
	cpu.KindSHA: "SHA", cpu.KindSHX: "SHX", cpu.KindSHY: "SHY", cpu.KindTAS: "TAS",
	cpu.KindUSBC: "SBC", cpu.KindJAM: "JAM",
}

// Step disassembles the instruction at pc and returns its text along with
// the byte count the PC should advance by to reach the next instruction.
// It never follows control flow — a JMP is rendered as text, not chased.
// It reads up to two bytes past pc so the caller must ensure those
// addresses are valid (true for any address inside the CPU's 64KB space).
func Step(pc uint16, r memory.Bank) (string, int) {
	opcode := r.Read(pc)
	d := cpu.Decode(opcode)
	mnemonic := mnemonics[d.Kind]
	length := d.Mode.Len()

	var operandText string
	switch d.Mode {
	case cpu.ModeImplied:
		operandText = ""
	case cpu.ModeAccumulator:
		operandText = "A"
	case cpu.ModeImmediate:
		operandText = fmt.Sprintf("#$%02X", r.Read(pc+1))
	case cpu.ModeZeroPage:
		operandText = fmt.Sprintf("$%02X", r.Read(pc+1))
	case cpu.ModeZeroPageX:
		operandText = fmt.Sprintf("$%02X,X", r.Read(pc+1))
	case cpu.ModeZeroPageY:
		operandText = fmt.Sprintf("$%02X,Y", r.Read(pc+1))
	case cpu.ModeIndirectX:
		operandText = fmt.Sprintf("($%02X,X)", r.Read(pc+1))
	case cpu.ModeIndirectY:
		operandText = fmt.Sprintf("($%02X),Y", r.Read(pc+1))
	case cpu.ModeAbsolute:
		operandText = fmt.Sprintf("$%02X%02X", r.Read(pc+2), r.Read(pc+1))
	case cpu.ModeAbsoluteX:
		operandText = fmt.Sprintf("$%02X%02X,X", r.Read(pc+2), r.Read(pc+1))
	case cpu.ModeAbsoluteY:
		operandText = fmt.Sprintf("$%02X%02X,Y", r.Read(pc+2), r.Read(pc+1))
	case cpu.ModeIndirect:
		operandText = fmt.Sprintf("($%02X%02X)", r.Read(pc+2), r.Read(pc+1))
	case cpu.ModeRelative:
		off := int8(r.Read(pc + 1))
		target := pc + 2 + uint16(off)
		operandText = fmt.Sprintf("$%04X", target)
	}

	if operandText == "" {
		return mnemonic, length
	}
	return mnemonic + " " + operandText, length
}
