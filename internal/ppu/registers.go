package ppu

import "github.com/thornewood/gbcore/internal/bits"

// ReadVRAM returns a VRAM byte at a bus address in 0x8000-0x9FFF.
func (p *PPU) ReadVRAM(addr uint16) uint8 {
	return p.vram[addr-0x8000]
}

// WriteVRAM stores a VRAM byte at a bus address in 0x8000-0x9FFF.
func (p *PPU) WriteVRAM(addr uint16, value uint8) {
	p.vram[addr-0x8000] = value
}

// ReadOAM returns an OAM byte at a bus address in 0xFE00-0xFE9F.
func (p *PPU) ReadOAM(addr uint16) uint8 {
	return p.oam[addr-0xFE00]
}

// WriteOAM stores an OAM byte at a bus address in 0xFE00-0xFE9F.
func (p *PPU) WriteOAM(addr uint16, value uint8) {
	p.oam[addr-0xFE00] = value
}

// Read returns the value of one of the 0xFF40-0xFF4B LCD registers.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case 0xFF40:
		return p.lcdc
	case 0xFF41:
		return p.readSTAT()
	case 0xFF42:
		return p.scy
	case 0xFF43:
		return p.scx
	case 0xFF44:
		return p.ly
	case 0xFF45:
		return p.lyc
	case 0xFF47:
		return p.bgp
	case 0xFF48:
		return p.obp0
	case 0xFF49:
		return p.obp1
	case 0xFF4A:
		return p.wy
	case 0xFF4B:
		return p.wx
	}
	return 0xFF
}

// Write stores a value to one of the 0xFF40-0xFF4B LCD registers.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case 0xFF40:
		p.lcdc = value
	case 0xFF41:
		p.statFlags = value & 0x78
	case 0xFF42:
		p.scy = value
	case 0xFF43:
		p.scx = value
	case 0xFF45:
		p.lyc = value
		p.updateCoincidence()
	case 0xFF47:
		p.bgp = value
	case 0xFF48:
		p.obp0 = value
	case 0xFF49:
		p.obp1 = value
	case 0xFF4A:
		p.wy = value
	case 0xFF4B:
		p.wx = value
		// 0xFF44 (LY) is read-only. 0xFF46 (OAM DMA) has no handler here:
		// the original this was distilled from never implements a DMA
		// transfer either, so writes to it reach this method and are dropped.
	}
}

func (p *PPU) readSTAT() uint8 {
	stat := 0x80 | p.statFlags | p.mode
	if p.coincidence {
		stat = bits.Set(stat, 2)
	}
	return stat
}
