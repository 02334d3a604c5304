// Package gameboy wires the CPU, PPU, timer, joypad and bus into the
// single-threaded cooperative loop described in spec.md §5: a driver calls
// Step, which steps the CPU once and advances the PPU and timer by the
// resulting T-cycles. No locks or atomics are required because all
// mutation within a step is sequential.
package gameboy

import (
	"github.com/thornewood/gbcore/internal/bus"
	"github.com/thornewood/gbcore/internal/cartridge"
	"github.com/thornewood/gbcore/internal/cpu"
	"github.com/thornewood/gbcore/internal/interrupts"
	"github.com/thornewood/gbcore/internal/joypad"
	"github.com/thornewood/gbcore/internal/ppu"
	"github.com/thornewood/gbcore/internal/timer"
)

// ClockSpeed is the Game Boy's master clock, in T-cycles per second.
const ClockSpeed = 4194304

// FrameRate is the nominal display refresh rate.
const FrameRate = 60

// TicksPerFrame bounds how many T-cycles RunFrame will step before giving
// up on a frame becoming ready, guarding against a stalled LCD (§4.5
// scenario 6: LCDC bit 7 cleared holds LY at 0 and never wraps).
const TicksPerFrame = ClockSpeed / FrameRate

// GameBoy owns every subsystem for one running cartridge and drives them
// through the cooperative step loop of spec.md §5.
type GameBoy struct {
	CPU        *cpu.CPU
	Bus        *bus.Bus
	PPU        *ppu.PPU
	Timer      *timer.Controller
	Joypad     *joypad.State
	Interrupts *interrupts.Controller
	Cartridge  *cartridge.Cartridge
}

// New constructs a GameBoy from ROM bytes and a battery-save path (empty
// if the cartridge has no battery, or the save should not be persisted).
// The cartridge header is validated before any subsystem is wired; a
// structural error here is fatal per spec.md §7 and is returned unwrapped
// for the caller to report.
func New(rom []byte, savePath string) (*GameBoy, error) {
	cart, err := cartridge.New(rom, savePath)
	if err != nil {
		return nil, err
	}

	irq := interrupts.NewController()
	pad := joypad.New(irq)
	tm := timer.NewController(irq)
	video := ppu.New(irq)
	memBus := bus.New(cart, video, tm, pad, irq)
	interp := cpu.New(memBus, irq)

	return &GameBoy{
		CPU:        interp,
		Bus:        memBus,
		PPU:        video,
		Timer:      tm,
		Joypad:     pad,
		Interrupts: irq,
		Cartridge:  cart,
	}, nil
}

// Step executes exactly one CPU instruction (or interrupt dispatch, or one
// idle cycle while halted) and advances every cycle-driven subsystem by
// the same number of T-cycles, per spec.md §5's step ordering.
func (g *GameBoy) Step() int {
	cycles := g.CPU.Step()
	g.PPU.Tick(cycles)
	g.Timer.Tick(cycles)
	return cycles
}

// RunFrame steps the emulation until the PPU completes a frame (the LY
// wrap from 153 to 0, per §6) and returns it. If TicksPerFrame elapses
// without a frame completing — an unresponsive LCD, per scenario 6 — the
// most recently completed frame is returned instead, which may be stale.
func (g *GameBoy) RunFrame() []byte {
	ticks := 0
	for ticks < TicksPerFrame {
		ticks += g.Step()
		if g.PPU.FrameReady() {
			return g.PPU.TakeFrame()
		}
	}
	return g.PPU.TakeFrame()
}

// Press presses the given abstract key, requesting the Joypad interrupt.
func (g *GameBoy) Press(key joypad.Key) {
	g.Joypad.KeyDown(key)
}

// Release releases the given abstract key.
func (g *GameBoy) Release(key joypad.Key) {
	g.Joypad.KeyUp(key)
}

// Save persists cartridge RAM to the battery save path, if the cartridge
// has a battery and a path was given. It is a no-op otherwise.
func (g *GameBoy) Save() error {
	return g.Cartridge.Save()
}
