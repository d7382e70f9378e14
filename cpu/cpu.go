// Package cpu implements the MOS 6502 (Ricoh 2A03 variant) execution
// engine: register file, instruction decoder, addressing-mode evaluator,
// execution unit, interrupt controller and tick driver.
package cpu

import (
	"fmt"
	"log"

	"github.com/Hashim-K/NES-Emulator/irq"
	"github.com/Hashim-K/NES-Emulator/memory"
)

// Flag bits of the P (processor status) register.
const (
	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	PAlwaysOne = uint8(0x20) // bit 5, always read back as 1 when pushed
	PBreak     = uint8(0x10) // set on stack only by BRK/PHP
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

// Vector addresses (§3).
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// illegalMagicConstant is the die-specific constant used by ANE/LXA/SHA/
// SHX/SHY/TAS per §9's open question. $EE is the commonly documented NMOS
// value and is fixed here so results are deterministic.
const illegalMagicConstant = uint8(0xEE)

// InvalidCPUState reports an internal precondition violation (a bug in the
// engine, not a malformed ROM).
type InvalidCPUState struct {
	Reason string
}

func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// interruptState enumerates the tick driver's per-§4.9 state machine.
type interruptState int

const (
	stateUninitialized interruptState = iota
	stateBooting
	stateNormal
	stateNMI
	stateIRQ
)

// CPU holds the full register file plus the tick driver's cursor state. A,
// X, Y, S and P are kept as plain sibling fields (no indirection) per the
// "inline the bytes" design note.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16

	bus memory.Bank
	irq irq.Sender
	nmi *irq.EdgeSender

	// Tick driver state (§4.9).
	currentCycle   int
	totalCycles    uint64
	branchTaken    bool
	pageCrossing   bool
	interruptState interruptState
	bootCycle      int

	cur    decodedInstruction
	opcode uint8
	jammed bool
	jamOp  uint8

	// pendingNMI latches a sampled NMI edge until it is serviced.
	pendingNMI bool

	Logger *log.Logger
}

// Config supplies the collaborators a CPU needs at construction.
type Config struct {
	Bus memory.Bank
	Irq irq.Sender
	Nmi irq.Sender
}

// New creates a CPU in the Uninitialized tick-driver state with all
// registers zero. Its first Tick runs the reset sequence: PC takes the reset
// vector, S is $FD, I is set. The CPU then idles for 7 cycles (modeled as
// the Booting tick-driver state) before executing its first instruction.
func New(cfg Config) *CPU {
	if cfg.Bus == nil {
		panic(InvalidCPUState{Reason: "Config.Bus must not be nil"})
	}
	c := &CPU{
		bus:            cfg.Bus,
		irq:            cfg.Irq,
		interruptState: stateUninitialized,
		Logger:         log.Default(),
	}
	if cfg.Nmi != nil {
		c.nmi = irq.NewEdgeSender(cfg.Nmi)
	}
	return c
}

// TotalCycles returns the number of master cycles ticked so far.
func (c *CPU) TotalCycles() uint64 { return c.totalCycles }

// Jammed reports whether the CPU has executed a JAM opcode and is halted.
func (c *CPU) Jammed() bool { return c.jammed }

func (c *CPU) push(val uint8) {
	c.bus.Write(0x0100+uint16(c.S), val)
	c.S--
}

func (c *CPU) pop() uint8 {
	c.S++
	return c.bus.Read(0x0100 + uint16(c.S))
}

func (c *CPU) setZN(v uint8) {
	c.P &^= PZero | PNegative
	if v == 0 {
		c.P |= PZero
	}
	if v&PNegative != 0 {
		c.P |= PNegative
	}
}
