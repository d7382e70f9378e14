package cpu

// baseCycles gives the un-penalized cycle count for each (kind, mode) pair
// as §4.2 documents. Page-crossing and branch-taken penalties are added by
// the tick driver, not baked in here, except for the fixed oddities (JMP
// indirect, JSR, BRK, stack ops, RTI/RTS, and all read-modify-write
// instructions, which never vary with addressing).
func baseCycles(d decodedInstruction) int {
	switch d.kind {
	case KindBRK:
		return 7
	case KindJSR:
		return 6
	case KindRTI, KindRTS:
		return 6
	case KindPHA, KindPHP:
		return 3
	case KindPLA, KindPLP:
		return 4
	case KindJMP:
		if d.mode == ModeIndirect {
			return 5
		}
		return 3
	case KindJAM:
		// Real hardware has JAM consume its own fetch cycle and then one
		// further internal cycle before the bus freezes; modeling it as
		// fewer than 2 would violate the engine's documented invariant that
		// every opcode byte's cycle count falls in 2..8.
		return 2
	}

	// STA is marked rmw (spec.md §4.4: stores never skip the extra cycle a
	// page-crossing index would otherwise only conditionally add) but its
	// actual cost table is a store's, not a read-modify-write instruction's
	// ASL/INC/DEC-style 5/6/7/8, so it gets its own unconditional case here.
	if d.kind == KindSTA {
		switch d.mode {
		case ModeZeroPage:
			return 3
		case ModeZeroPageX, ModeAbsolute:
			return 4
		case ModeAbsoluteX, ModeAbsoluteY:
			return 5
		case ModeIndirectX, ModeIndirectY:
			return 6
		}
	}

	if d.rmw {
		switch d.mode {
		case ModeZeroPage:
			return 5
		case ModeZeroPageX, ModeAbsolute:
			return 6
		case ModeAbsoluteX, ModeAbsoluteY:
			return 7
		case ModeIndirectX, ModeIndirectY:
			return 8
		case ModeAccumulator:
			return 2
		}
	}

	switch branchKind(d.kind) {
	case true:
		return 2
	}

	switch d.mode {
	case ModeImmediate, ModeImplied, ModeAccumulator:
		return 2
	case ModeZeroPage:
		return 3
	case ModeZeroPageX, ModeZeroPageY, ModeAbsolute:
		return 4
	case ModeAbsoluteX, ModeAbsoluteY:
		return 4 // +1 on page cross, applied by the tick driver
	case ModeIndirectX:
		return 6
	case ModeIndirectY:
		return 5 // +1 on page cross, applied by the tick driver
	case ModeRelative:
		return 2
	default:
		return 2
	}
}

func branchKind(k Kind) bool {
	switch k {
	case KindBCC, KindBCS, KindBEQ, KindBMI, KindBNE, KindBPL, KindBVC, KindBVS:
		return true
	default:
		return false
	}
}
