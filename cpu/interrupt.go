package cpu

// enterBRK pushes PC+2 (BRK's own operand byte is skipped, matching the
// hardware's two-byte BRK instruction) and P with the break flag set, then
// loads PC from the IRQ/BRK vector. An NMI that hijacks this BRK within its
// first four cycles (§4.8) re-points PC to the NMI vector afterwards, in
// fetchAndRun and Tick.
func (c *CPU) enterBRK() {
	// BRK is a two-byte instruction on real hardware: the byte after the
	// opcode is a padding signature byte that is fetched but discarded.
	// evalAddressing never consumes it (BRK decodes as ModeImplied, since
	// it has no operand to resolve), so the skip is applied here instead.
	ret := c.PC + 1
	c.push(uint8(ret >> 8))
	c.push(uint8(ret))
	c.push(c.P | PBreak | PAlwaysOne)
	c.P |= PInterrupt
	c.PC = c.readWord(IRQVector)
}

// enterHardwareInterrupt runs the push/vector sequence for an NMI or level
// IRQ that was not generated by a BRK: B is pushed clear (§3 invariant: "B
// reads 0 when pushed by a hardware interrupt, 1 when pushed by BRK/PHP").
func (c *CPU) enterHardwareInterrupt(nmi bool) {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
	c.push((c.P &^ PBreak) | PAlwaysOne)
	c.P |= PInterrupt

	vector := IRQVector
	if nmi {
		vector = NMIVector
	}
	c.PC = c.readWord(vector)
}

// pollInterrupts samples the NMI edge detector and the level IRQ line,
// honoring the I flag for IRQ (NMI is never maskable). It returns which
// kind of hardware interrupt, if any, should be serviced instead of the
// next instruction fetch.
func (c *CPU) pollInterrupts() interruptState {
	nmiEdge := false
	if c.nmi != nil {
		nmiEdge = c.nmi.Sample()
	}
	if nmiEdge {
		c.pendingNMI = true
	}
	if c.pendingNMI {
		return stateNMI
	}
	if c.irq != nil && c.irq.Raised() && c.P&PInterrupt == 0 {
		return stateIRQ
	}
	return stateNormal
}
