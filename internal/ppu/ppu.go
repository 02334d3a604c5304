// Package ppu implements the dot-timed scanline pixel-processing unit
// described in spec.md §4.5: a mode state machine driving a background,
// window, and sprite compositor into a 160×144 RGBA8888 frame buffer.
package ppu

import "github.com/thornewood/gbcore/internal/interrupts"

// Modes, matching STAT's low two bits.
const (
	ModeHBlank        uint8 = 0
	ModeVBlank        uint8 = 1
	ModeOAMScan       uint8 = 2
	ModePixelTransfer uint8 = 3
)

const (
	Width  = 160
	Height = 144
)

// shades is the fixed grayscale ramp every 2-bit color index maps through.
var shades = [4]uint8{0, 96, 192, 255}

// PPU owns VRAM, OAM, the LCD registers, and the frame buffer delivered to
// the pixel sink once per frame.
type PPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte

	lcdc, scy, scx, lyc, bgp, obp0, obp1, wy, wx uint8
	ly                                           uint8
	statFlags                                    uint8 // bits 6-3: LYC/OAM/VBlank/HBlank interrupt-enable

	mode        uint8
	dot         int
	coincidence bool

	frame     [Width * Height * 4]byte
	frameDone bool

	irq *interrupts.Controller
}

// New returns a PPU wired to the given interrupt controller, starting in
// OAM_SCAN at dot 0 of line 0, matching real power-on state.
func New(irq *interrupts.Controller) *PPU {
	return &PPU{irq: irq, mode: ModeOAMScan}
}

// Tick advances the PPU by the given number of T-cycles, driving the mode
// state machine and rendering scanlines as HBLANK is entered.
func (p *PPU) Tick(cycles int) {
	if p.lcdc&0x80 == 0 {
		p.ly = 0
		p.dot = 0
		p.mode = ModeHBlank
		return
	}

	p.dot += cycles
	for {
		switch p.mode {
		case ModeOAMScan:
			if p.dot < 80 {
				return
			}
			p.dot -= 80
			p.setMode(ModePixelTransfer)
		case ModePixelTransfer:
			if p.dot < 172 {
				return
			}
			p.dot -= 172
			p.renderScanline()
			p.setMode(ModeHBlank)
		case ModeHBlank:
			if p.dot < 204 {
				return
			}
			p.dot -= 204
			p.advanceLY()
			if p.ly == 144 {
				p.setMode(ModeVBlank)
				p.irq.Request(interrupts.VBlankBit)
			} else {
				p.setMode(ModeOAMScan)
			}
		case ModeVBlank:
			if p.dot < 456 {
				return
			}
			p.dot -= 456
			p.advanceLY()
			if p.ly > 153 {
				p.ly = 0
				p.updateCoincidence()
				p.setMode(ModeOAMScan)
				p.frameDone = true
			}
		}
	}
}

func (p *PPU) advanceLY() {
	p.ly++
	p.updateCoincidence()
}

func (p *PPU) updateCoincidence() {
	was := p.coincidence
	p.coincidence = p.ly == p.lyc
	if p.coincidence && !was && p.statFlags&0x40 != 0 {
		p.irq.Request(interrupts.LCDBit)
	}
}

func (p *PPU) setMode(m uint8) {
	p.mode = m
	switch m {
	case ModeHBlank:
		if p.statFlags&0x08 != 0 {
			p.irq.Request(interrupts.LCDBit)
		}
	case ModeVBlank:
		if p.statFlags&0x10 != 0 {
			p.irq.Request(interrupts.LCDBit)
		}
	case ModeOAMScan:
		if p.statFlags&0x20 != 0 {
			p.irq.Request(interrupts.LCDBit)
		}
	}
}

// FrameReady reports whether a full frame has been rendered since the last
// call to TakeFrame, per the "delivered once per frame on LY wrap" contract.
func (p *PPU) FrameReady() bool {
	return p.frameDone
}

// TakeFrame returns the current RGBA8888 frame buffer and clears the
// ready flag.
func (p *PPU) TakeFrame() []byte {
	p.frameDone = false
	out := make([]byte, len(p.frame))
	copy(out, p.frame[:])
	return out
}

// LY returns the current scanline (the value Read reports at 0xFF44).
func (p *PPU) LY() uint8 { return p.ly }

// Mode returns the current PPU mode.
func (p *PPU) Mode() uint8 { return p.mode }
