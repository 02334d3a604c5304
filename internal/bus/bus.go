// Package bus implements the total, stateless address decoder described in
// spec.md §4.2: every address in 0x0000-0xFFFF routes to exactly one
// region, with no gaps.
package bus

import (
	"github.com/thornewood/gbcore/internal/cartridge"
	"github.com/thornewood/gbcore/internal/interrupts"
	"github.com/thornewood/gbcore/internal/joypad"
	"github.com/thornewood/gbcore/internal/ppu"
	"github.com/thornewood/gbcore/internal/timer"
)

// Bus owns WRAM and HRAM directly, and holds references to every other
// region's owner: the cartridge, the PPU (VRAM/OAM), the timer, the
// joypad, and the interrupt controller (IF/IE).
type Bus struct {
	cart *cartridge.Cartridge
	ppu  *ppu.PPU
	tm   *timer.Controller
	pad  *joypad.State
	irq  *interrupts.Controller

	wram [0x2000]byte // 0xC000-0xDFFF, aliased at 0xE000-0xFDFF
	hram [0x7F]byte   // 0xFF80-0xFFFE
}

// New wires a Bus to the given components. All of them must be non-nil.
func New(cart *cartridge.Cartridge, p *ppu.PPU, tm *timer.Controller, pad *joypad.State, irq *interrupts.Controller) *Bus {
	return &Bus{cart: cart, ppu: p, tm: tm, pad: pad, irq: irq}
}

// Read returns the byte at the given address. The decode is total: every
// address in 0x0000-0xFFFF resolves to a defined value.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		return b.cart.Read(addr)
	case addr < 0xA000:
		return b.ppu.ReadVRAM(addr)
	case addr < 0xC000:
		return b.cart.Read(addr)
	case addr < 0xE000:
		return b.wram[addr-0xC000]
	case addr < 0xFE00:
		return b.wram[addr-0xE000]
	case addr < 0xFEA0:
		return b.ppu.ReadOAM(addr)
	case addr < 0xFF00:
		return 0xFF
	case addr < 0xFF80:
		return b.readIO(addr)
	case addr < 0xFFFF:
		return b.hram[addr-0xFF80]
	default: // addr == 0xFFFF
		return b.irq.Read(addr)
	}
}

// Write stores value at the given address.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		b.cart.Write(addr, value)
	case addr < 0xA000:
		b.ppu.WriteVRAM(addr, value)
	case addr < 0xC000:
		b.cart.Write(addr, value)
	case addr < 0xE000:
		b.wram[addr-0xC000] = value
	case addr < 0xFE00:
		b.wram[addr-0xE000] = value
	case addr < 0xFEA0:
		b.ppu.WriteOAM(addr, value)
	case addr < 0xFF00:
		// unusable region: writes are dropped
	case addr < 0xFF80:
		b.writeIO(addr, value)
	case addr < 0xFFFF:
		b.hram[addr-0xFF80] = value
	default: // addr == 0xFFFF
		b.irq.Write(addr, value)
	}
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch {
	case addr == 0xFF00:
		return b.pad.Read()
	case addr >= 0xFF04 && addr <= 0xFF07:
		return b.tm.Read(addr)
	case addr == 0xFF0F:
		return b.irq.Read(addr)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		return b.ppu.Read(addr)
	default:
		return 0xFF
	}
}

func (b *Bus) writeIO(addr uint16, value uint8) {
	switch {
	case addr == 0xFF00:
		b.pad.Write(value)
	case addr >= 0xFF04 && addr <= 0xFF07:
		b.tm.Write(addr, value)
	case addr == 0xFF0F:
		b.irq.Write(addr, value)
	case addr >= 0xFF40 && addr <= 0xFF4B:
		b.ppu.Write(addr, value)
	}
}
