package cpu

// Kind is a closed enumeration of the 56 official 6502 mnemonics plus the
// 21 unofficial ones (§3 Instruction kind).
type Kind int

const (
	KindNOP Kind = iota
	KindLDA
	KindLDX
	KindLDY
	KindSTA
	KindSTX
	KindSTY
	KindTAX
	KindTAY
	KindTXA
	KindTYA
	KindTSX
	KindTXS
	KindPHA
	KindPHP
	KindPLA
	KindPLP
	KindINC
	KindINX
	KindINY
	KindDEC
	KindDEX
	KindDEY
	KindADC
	KindSBC
	KindAND
	KindORA
	KindEOR
	KindBIT
	KindASL
	KindLSR
	KindROL
	KindROR
	KindCMP
	KindCPX
	KindCPY
	KindBCC
	KindBCS
	KindBEQ
	KindBMI
	KindBNE
	KindBPL
	KindBVC
	KindBVS
	KindCLC
	KindSEC
	KindCLD
	KindSED
	KindCLI
	KindSEI
	KindCLV
	KindJMP
	KindJSR
	KindRTS
	KindBRK
	KindRTI
	// Unofficial opcodes.
	KindSLO
	KindRLA
	KindSRE
	KindRRA
	KindSAX
	KindLAX
	KindDCP
	KindISC
	KindANC
	KindALR
	KindARR
	KindANE
	KindLXA
	KindLAS
	KindSBX
	KindSHA
	KindSHX
	KindSHY
	KindTAS
	KindUSBC
	KindJAM
)

// Mode is a tagged addressing mode (§3 Addressing mode).
type Mode int

const (
	ModeAccumulator Mode = iota
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeImmediate
	ModeImplied
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
)

// Len returns the fixed instruction length in bytes for the mode.
func (m Mode) Len() int {
	switch m {
	case ModeAccumulator, ModeImplied:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeRelative:
		return 2
	default: // Absolute, AbsoluteX, AbsoluteY, Indirect
		return 3
	}
}

// decodedInstruction pairs a Kind with its addressing Mode (§3 Decoded
// instruction).
type decodedInstruction struct {
	kind Kind
	mode Mode
	rmw  bool // read-modify-write: skips the page-crossing cycle penalty
}

// decodeTable is the fixed 256-entry opcode -> (kind, mode) mapping. JAM
// opcodes are the twelve silicon-documented freeze instructions; all other
// unassigned encodings collapse to (NOP, their natural mode).
var decodeTable = [256]decodedInstruction{
	0x00: {KindBRK, ModeImplied, false},
	0x01: {KindORA, ModeIndirectX, false},
	0x02: {KindJAM, ModeImplied, false},
	0x03: {KindSLO, ModeIndirectX, true},
	0x04: {KindNOP, ModeZeroPage, false},
	0x05: {KindORA, ModeZeroPage, false},
	0x06: {KindASL, ModeZeroPage, true},
	0x07: {KindSLO, ModeZeroPage, true},
	0x08: {KindPHP, ModeImplied, false},
	0x09: {KindORA, ModeImmediate, false},
	0x0A: {KindASL, ModeAccumulator, false},
	0x0B: {KindANC, ModeImmediate, false},
	0x0C: {KindNOP, ModeAbsolute, false},
	0x0D: {KindORA, ModeAbsolute, false},
	0x0E: {KindASL, ModeAbsolute, true},
	0x0F: {KindSLO, ModeAbsolute, true},
	0x10: {KindBPL, ModeRelative, false},
	0x11: {KindORA, ModeIndirectY, false},
	0x12: {KindJAM, ModeImplied, false},
	0x13: {KindSLO, ModeIndirectY, true},
	0x14: {KindNOP, ModeZeroPageX, false},
	0x15: {KindORA, ModeZeroPageX, false},
	0x16: {KindASL, ModeZeroPageX, true},
	0x17: {KindSLO, ModeZeroPageX, true},
	0x18: {KindCLC, ModeImplied, false},
	0x19: {KindORA, ModeAbsoluteY, false},
	0x1A: {KindNOP, ModeImplied, false},
	0x1B: {KindSLO, ModeAbsoluteY, true},
	0x1C: {KindNOP, ModeAbsoluteX, false},
	0x1D: {KindORA, ModeAbsoluteX, false},
	0x1E: {KindASL, ModeAbsoluteX, true},
	0x1F: {KindSLO, ModeAbsoluteX, true},
	0x20: {KindJSR, ModeAbsolute, false},
	0x21: {KindAND, ModeIndirectX, false},
	0x22: {KindJAM, ModeImplied, false},
	0x23: {KindRLA, ModeIndirectX, true},
	0x24: {KindBIT, ModeZeroPage, false},
	0x25: {KindAND, ModeZeroPage, false},
	0x26: {KindROL, ModeZeroPage, true},
	0x27: {KindRLA, ModeZeroPage, true},
	0x28: {KindPLP, ModeImplied, false},
	0x29: {KindAND, ModeImmediate, false},
	0x2A: {KindROL, ModeAccumulator, false},
	0x2B: {KindANC, ModeImmediate, false},
	0x2C: {KindBIT, ModeAbsolute, false},
	0x2D: {KindAND, ModeAbsolute, false},
	0x2E: {KindROL, ModeAbsolute, true},
	0x2F: {KindRLA, ModeAbsolute, true},
	0x30: {KindBMI, ModeRelative, false},
	0x31: {KindAND, ModeIndirectY, false},
	0x32: {KindJAM, ModeImplied, false},
	0x33: {KindRLA, ModeIndirectY, true},
	0x34: {KindNOP, ModeZeroPageX, false},
	0x35: {KindAND, ModeZeroPageX, false},
	0x36: {KindROL, ModeZeroPageX, true},
	0x37: {KindRLA, ModeZeroPageX, true},
	0x38: {KindSEC, ModeImplied, false},
	0x39: {KindAND, ModeAbsoluteY, false},
	0x3A: {KindNOP, ModeImplied, false},
	0x3B: {KindRLA, ModeAbsoluteY, true},
	0x3C: {KindNOP, ModeAbsoluteX, false},
	0x3D: {KindAND, ModeAbsoluteX, false},
	0x3E: {KindROL, ModeAbsoluteX, true},
	0x3F: {KindRLA, ModeAbsoluteX, true},
	0x40: {KindRTI, ModeImplied, false},
	0x41: {KindEOR, ModeIndirectX, false},
	0x42: {KindJAM, ModeImplied, false},
	0x43: {KindSRE, ModeIndirectX, true},
	0x44: {KindNOP, ModeZeroPage, false},
	0x45: {KindEOR, ModeZeroPage, false},
	0x46: {KindLSR, ModeZeroPage, true},
	0x47: {KindSRE, ModeZeroPage, true},
	0x48: {KindPHA, ModeImplied, false},
	0x49: {KindEOR, ModeImmediate, false},
	0x4A: {KindLSR, ModeAccumulator, false},
	0x4B: {KindALR, ModeImmediate, false},
	0x4C: {KindJMP, ModeAbsolute, false},
	0x4D: {KindEOR, ModeAbsolute, false},
	0x4E: {KindLSR, ModeAbsolute, true},
	0x4F: {KindSRE, ModeAbsolute, true},
	0x50: {KindBVC, ModeRelative, false},
	0x51: {KindEOR, ModeIndirectY, false},
	0x52: {KindJAM, ModeImplied, false},
	0x53: {KindSRE, ModeIndirectY, true},
	0x54: {KindNOP, ModeZeroPageX, false},
	0x55: {KindEOR, ModeZeroPageX, false},
	0x56: {KindLSR, ModeZeroPageX, true},
	0x57: {KindSRE, ModeZeroPageX, true},
	0x58: {KindCLI, ModeImplied, false},
	0x59: {KindEOR, ModeAbsoluteY, false},
	0x5A: {KindNOP, ModeImplied, false},
	0x5B: {KindSRE, ModeAbsoluteY, true},
	0x5C: {KindNOP, ModeAbsoluteX, false},
	0x5D: {KindEOR, ModeAbsoluteX, false},
	0x5E: {KindLSR, ModeAbsoluteX, true},
	0x5F: {KindSRE, ModeAbsoluteX, true},
	0x60: {KindRTS, ModeImplied, false},
	0x61: {KindADC, ModeIndirectX, false},
	0x62: {KindJAM, ModeImplied, false},
	0x63: {KindRRA, ModeIndirectX, true},
	0x64: {KindNOP, ModeZeroPage, false},
	0x65: {KindADC, ModeZeroPage, false},
	0x66: {KindROR, ModeZeroPage, true},
	0x67: {KindRRA, ModeZeroPage, true},
	0x68: {KindPLA, ModeImplied, false},
	0x69: {KindADC, ModeImmediate, false},
	0x6A: {KindROR, ModeAccumulator, false},
	0x6B: {KindARR, ModeImmediate, false},
	0x6C: {KindJMP, ModeIndirect, false},
	0x6D: {KindADC, ModeAbsolute, false},
	0x6E: {KindROR, ModeAbsolute, true},
	0x6F: {KindRRA, ModeAbsolute, true},
	0x70: {KindBVS, ModeRelative, false},
	0x71: {KindADC, ModeIndirectY, false},
	0x72: {KindJAM, ModeImplied, false},
	0x73: {KindRRA, ModeIndirectY, true},
	0x74: {KindNOP, ModeZeroPageX, false},
	0x75: {KindADC, ModeZeroPageX, false},
	0x76: {KindROR, ModeZeroPageX, true},
	0x77: {KindRRA, ModeZeroPageX, true},
	0x78: {KindSEI, ModeImplied, false},
	0x79: {KindADC, ModeAbsoluteY, false},
	0x7A: {KindNOP, ModeImplied, false},
	0x7B: {KindRRA, ModeAbsoluteY, true},
	0x7C: {KindNOP, ModeAbsoluteX, false},
	0x7D: {KindADC, ModeAbsoluteX, false},
	0x7E: {KindROR, ModeAbsoluteX, true},
	0x7F: {KindRRA, ModeAbsoluteX, true},
	0x80: {KindNOP, ModeImmediate, false},
	0x81: {KindSTA, ModeIndirectX, true},
	0x82: {KindNOP, ModeImmediate, false},
	0x83: {KindSAX, ModeIndirectX, false},
	0x84: {KindSTY, ModeZeroPage, false},
	0x85: {KindSTA, ModeZeroPage, true},
	0x86: {KindSTX, ModeZeroPage, false},
	0x87: {KindSAX, ModeZeroPage, false},
	0x88: {KindDEY, ModeImplied, false},
	0x89: {KindNOP, ModeImmediate, false},
	0x8A: {KindTXA, ModeImplied, false},
	0x8B: {KindANE, ModeImmediate, false},
	0x8C: {KindSTY, ModeAbsolute, false},
	0x8D: {KindSTA, ModeAbsolute, true},
	0x8E: {KindSTX, ModeAbsolute, false},
	0x8F: {KindSAX, ModeAbsolute, false},
	0x90: {KindBCC, ModeRelative, false},
	0x91: {KindSTA, ModeIndirectY, true},
	0x92: {KindJAM, ModeImplied, false},
	0x93: {KindSHA, ModeIndirectY, false},
	0x94: {KindSTY, ModeZeroPageX, false},
	0x95: {KindSTA, ModeZeroPageX, true},
	0x96: {KindSTX, ModeZeroPageY, false},
	0x97: {KindSAX, ModeZeroPageY, false},
	0x98: {KindTYA, ModeImplied, false},
	0x99: {KindSTA, ModeAbsoluteY, true},
	0x9A: {KindTXS, ModeImplied, false},
	0x9B: {KindTAS, ModeAbsoluteY, false},
	0x9C: {KindSHY, ModeAbsoluteX, false},
	0x9D: {KindSTA, ModeAbsoluteX, true},
	0x9E: {KindSHX, ModeAbsoluteY, false},
	0x9F: {KindSHA, ModeAbsoluteY, false},
	0xA0: {KindLDY, ModeImmediate, false},
	0xA1: {KindLDA, ModeIndirectX, false},
	0xA2: {KindLDX, ModeImmediate, false},
	0xA3: {KindLAX, ModeIndirectX, false},
	0xA4: {KindLDY, ModeZeroPage, false},
	0xA5: {KindLDA, ModeZeroPage, false},
	0xA6: {KindLDX, ModeZeroPage, false},
	0xA7: {KindLAX, ModeZeroPage, false},
	0xA8: {KindTAY, ModeImplied, false},
	0xA9: {KindLDA, ModeImmediate, false},
	0xAA: {KindTAX, ModeImplied, false},
	0xAB: {KindLXA, ModeImmediate, false},
	0xAC: {KindLDY, ModeAbsolute, false},
	0xAD: {KindLDA, ModeAbsolute, false},
	0xAE: {KindLDX, ModeAbsolute, false},
	0xAF: {KindLAX, ModeAbsolute, false},
	0xB0: {KindBCS, ModeRelative, false},
	0xB1: {KindLDA, ModeIndirectY, false},
	0xB2: {KindJAM, ModeImplied, false},
	0xB3: {KindLAX, ModeIndirectY, false},
	0xB4: {KindLDY, ModeZeroPageX, false},
	0xB5: {KindLDA, ModeZeroPageX, false},
	0xB6: {KindLDX, ModeZeroPageY, false},
	0xB7: {KindLAX, ModeZeroPageY, false},
	0xB8: {KindCLV, ModeImplied, false},
	0xB9: {KindLDA, ModeAbsoluteY, false},
	0xBA: {KindTSX, ModeImplied, false},
	0xBB: {KindLAS, ModeAbsoluteY, false},
	0xBC: {KindLDY, ModeAbsoluteX, false},
	0xBD: {KindLDA, ModeAbsoluteX, false},
	0xBE: {KindLDX, ModeAbsoluteY, false},
	0xBF: {KindLAX, ModeAbsoluteY, false},
	0xC0: {KindCPY, ModeImmediate, false},
	0xC1: {KindCMP, ModeIndirectX, false},
	0xC2: {KindNOP, ModeImmediate, false},
	0xC3: {KindDCP, ModeIndirectX, true},
	0xC4: {KindCPY, ModeZeroPage, false},
	0xC5: {KindCMP, ModeZeroPage, false},
	0xC6: {KindDEC, ModeZeroPage, true},
	0xC7: {KindDCP, ModeZeroPage, true},
	0xC8: {KindINY, ModeImplied, false},
	0xC9: {KindCMP, ModeImmediate, false},
	0xCA: {KindDEX, ModeImplied, false},
	0xCB: {KindSBX, ModeImmediate, false},
	0xCC: {KindCPY, ModeAbsolute, false},
	0xCD: {KindCMP, ModeAbsolute, false},
	0xCE: {KindDEC, ModeAbsolute, true},
	0xCF: {KindDCP, ModeAbsolute, true},
	0xD0: {KindBNE, ModeRelative, false},
	0xD1: {KindCMP, ModeIndirectY, false},
	0xD2: {KindJAM, ModeImplied, false},
	0xD3: {KindDCP, ModeIndirectY, true},
	0xD4: {KindNOP, ModeZeroPageX, false},
	0xD5: {KindCMP, ModeZeroPageX, false},
	0xD6: {KindDEC, ModeZeroPageX, true},
	0xD7: {KindDCP, ModeZeroPageX, true},
	0xD8: {KindCLD, ModeImplied, false},
	0xD9: {KindCMP, ModeAbsoluteY, false},
	0xDA: {KindNOP, ModeImplied, false},
	0xDB: {KindDCP, ModeAbsoluteY, true},
	0xDC: {KindNOP, ModeAbsoluteX, false},
	0xDD: {KindCMP, ModeAbsoluteX, false},
	0xDE: {KindDEC, ModeAbsoluteX, true},
	0xDF: {KindDCP, ModeAbsoluteX, true},
	0xE0: {KindCPX, ModeImmediate, false},
	0xE1: {KindSBC, ModeIndirectX, false},
	0xE2: {KindNOP, ModeImmediate, false},
	0xE3: {KindISC, ModeIndirectX, true},
	0xE4: {KindCPX, ModeZeroPage, false},
	0xE5: {KindSBC, ModeZeroPage, false},
	0xE6: {KindINC, ModeZeroPage, true},
	0xE7: {KindISC, ModeZeroPage, true},
	0xE8: {KindINX, ModeImplied, false},
	0xE9: {KindSBC, ModeImmediate, false},
	0xEA: {KindNOP, ModeImplied, false},
	0xEB: {KindUSBC, ModeImmediate, false},
	0xEC: {KindCPX, ModeAbsolute, false},
	0xED: {KindSBC, ModeAbsolute, false},
	0xEE: {KindINC, ModeAbsolute, true},
	0xEF: {KindISC, ModeAbsolute, true},
	0xF0: {KindBEQ, ModeRelative, false},
	0xF1: {KindSBC, ModeIndirectY, false},
	0xF2: {KindJAM, ModeImplied, false},
	0xF3: {KindISC, ModeIndirectY, true},
	0xF4: {KindNOP, ModeZeroPageX, false},
	0xF5: {KindSBC, ModeZeroPageX, false},
	0xF6: {KindINC, ModeZeroPageX, true},
	0xF7: {KindISC, ModeZeroPageX, true},
	0xF8: {KindSED, ModeImplied, false},
	0xF9: {KindSBC, ModeAbsoluteY, false},
	0xFA: {KindNOP, ModeImplied, false},
	0xFB: {KindISC, ModeAbsoluteY, true},
	0xFC: {KindNOP, ModeAbsoluteX, false},
	0xFD: {KindSBC, ModeAbsoluteX, false},
	0xFE: {KindINC, ModeAbsoluteX, true},
	0xFF: {KindISC, ModeAbsoluteX, true},
}

// decode is the pure function from an opcode byte to its (kind, mode) pair
// (§4.1). It never panics: every one of the 256 byte values has an entry in
// decodeTable.
func decode(op uint8) decodedInstruction {
	return decodeTable[op]
}

// Instruction is the exported (kind, mode) pair for a decoded opcode, for
// consumers outside the package such as the disassemble package.
type Instruction struct {
	Kind Kind
	Mode Mode
}

// Decode exposes decode for external callers.
func Decode(op uint8) Instruction {
	d := decodeTable[op]
	return Instruction{Kind: d.kind, Mode: d.mode}
}
