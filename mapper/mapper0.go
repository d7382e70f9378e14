package mapper

// Mapper0 implements NROM: a fixed 16KB or 32KB PRG-ROM window with no bank
// switching, and either CHR-ROM or a single 8KB CHR-RAM bank. Grounded on
// the bank-switch-cart shape used throughout the corpus for simple,
// non-switching cartridges, adapted to NROM's specific address windows.
type Mapper0 struct {
	prg []uint8
	chr []uint8
	// chrIsRAM is true when the cartridge shipped no CHR-ROM and the PPU
	// side is backed by writable RAM instead.
	chrIsRAM  bool
	mirroring Mirroring
}

// NewMapper0 creates a Mapper0 over the given PRG-ROM and CHR-ROM images.
// If chr is empty, an 8KB CHR-RAM bank is allocated instead.
func NewMapper0(prg, chr []uint8, mirroring Mirroring) *Mapper0 {
	m := &Mapper0{prg: prg, mirroring: mirroring}
	if len(chr) == 0 {
		m.chr = make([]uint8, 8192)
		m.chrIsRAM = true
	} else {
		m.chr = chr
	}
	return m
}

// CPURead maps $6000-$7FFF to nothing (NROM ships no PRG-RAM) and
// $8000-$FFFF to the PRG-ROM image, mirroring a 16KB image across both
// halves of the window.
func (m *Mapper0) CPURead(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	off := addr - 0x8000
	if len(m.prg) <= 0x4000 {
		off %= 0x4000
	}
	return m.prg[int(off)%len(m.prg)]
}

// CPUWrite is a no-op: NROM carries no writable PRG-side registers.
func (m *Mapper0) CPUWrite(addr uint16, val uint8) {}

// CHRRead reads the CHR-ROM/CHR-RAM pattern-table image directly; NROM
// never banks it.
func (m *Mapper0) CHRRead(addr uint16) uint8 {
	return m.chr[int(addr)%len(m.chr)]
}

// CHRWrite only has an effect when the cartridge supplies CHR-RAM.
func (m *Mapper0) CHRWrite(addr uint16, val uint8) {
	if m.chrIsRAM {
		m.chr[int(addr)%len(m.chr)] = val
	}
}

// Mirroring returns the mirroring fixed at cartridge-construction time from
// the iNES header, since NROM has no mirroring register.
func (m *Mapper0) Mirroring() Mirroring { return m.mirroring }
