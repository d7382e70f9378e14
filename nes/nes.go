// Package nes wires the CPU, address bus, cartridge and controllers into the
// single unit a host (the picture-generator collaborator and its event
// loop) drives one master cycle at a time.
package nes

import (
	"github.com/Hashim-K/NES-Emulator/bus"
	"github.com/Hashim-K/NES-Emulator/cartridge"
	"github.com/Hashim-K/NES-Emulator/controller"
	"github.com/Hashim-K/NES-Emulator/cpu"
	"github.com/Hashim-K/NES-Emulator/irq"
)

// Host is the picture-generator collaborator's contract (§6 Host-provided
// operations): register-level PPU access and the OAM-DMA sink are all the
// CPU core needs from it. Joypad state is not part of it; the host sets
// buttons through Pad1/Pad2 instead.
type Host interface {
	bus.Host
}

// NES owns one cartridge's worth of running state: the CPU, its address
// bus, the cartridge mapper, and both controller ports.
type NES struct {
	CPU  *cpu.CPU
	Bus  *bus.Bus
	Cart *cartridge.Cartridge
	Pad1 *controller.Controller
	Pad2 *controller.Controller

	nmiLine *irq.Line
	irqLine *irq.Line
}

// New parses rom (an iNES image already read into memory) and constructs a
// NES ready to Tick. host supplies the PPU register and OAM-DMA
// collaborators.
func New(rom []byte, host Host) (*NES, error) {
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}

	pad1 := controller.New()
	pad2 := controller.New()
	b := bus.New(host, cart, pad1, pad2)

	nmi := &irq.Line{}
	irqLine := &irq.Line{}
	c := cpu.New(cpu.Config{Bus: b, Irq: irqLine, Nmi: nmi})

	return &NES{
		CPU:     c,
		Bus:     b,
		Cart:    cart,
		Pad1:    pad1,
		Pad2:    pad2,
		nmiLine: nmi,
		irqLine: irqLine,
	}, nil
}

// Tick advances the whole machine by one master (CPU) cycle.
func (n *NES) Tick() error {
	return n.CPU.Tick()
}

// ReadCHR lets the host's picture generator read pattern-table data through
// the cartridge's mapper.
func (n *NES) ReadCHR(offset uint16) uint8 {
	return n.Cart.Mapper.CHRRead(offset)
}

// WriteCHR lets the host write CHR-RAM where the cartridge provides it;
// CHR-ROM cartridges silently ignore it.
func (n *NES) WriteCHR(offset uint16, val uint8) {
	n.Cart.Mapper.CHRWrite(offset, val)
}

// NonMaskableInterrupt asserts the NMI line, which stays asserted until
// ClearNonMaskableInterrupt is called; the CPU's edge
// detector converts this level into a one-shot edge the tick driver
// services before the next instruction fetch.
func (n *NES) NonMaskableInterrupt() {
	n.nmiLine.Set()
}

// ClearNonMaskableInterrupt deasserts the NMI line, completing the pulse a
// picture generator raises once per frame at the start of VBlank.
func (n *NES) ClearNonMaskableInterrupt() {
	n.nmiLine.Clear()
}

// SetIRQ asserts or clears the level-triggered IRQ line (driven by the
// cartridge's audio or mapper IRQ sources, out of scope for this core but
// exposed so a host-side APU stub can still assert it).
func (n *NES) SetIRQ(asserted bool) {
	if asserted {
		n.irqLine.Set()
	} else {
		n.irqLine.Clear()
	}
}
