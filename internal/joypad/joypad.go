// Package joypad implements the joypad register at 0xFF00 and the eight
// abstract key events described in spec.md §4.3 and §6.
package joypad

import "github.com/thornewood/gbcore/internal/interrupts"

// Key indices, per spec.md §6.
const (
	Right Key = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Key is one of the eight abstract button indices.
type Key = uint8

// State holds the joypad selection mask and the two 4-bit button latches.
// A latch bit of 1 means released, 0 means pressed.
type State struct {
	selection byte // bits 5,4 of 0xFF00, the only writable bits

	directionButtons byte // low nibble: Right, Left, Up, Down (bits 0-3)
	actionButtons    byte // low nibble: A, B, Select, Start (bits 0-3)

	irq *interrupts.Controller
}

// New returns a State with both button latches at "all released".
func New(irq *interrupts.Controller) *State {
	return &State{
		directionButtons: 0x0F,
		actionButtons:    0x0F,
		irq:              irq,
	}
}

// Read returns the value of 0xFF00: the selection mask plus the combined
// button nibble, per spec.md §4.3.
func (s *State) Read() uint8 {
	low := uint8(0x0F)
	dirSelected := s.selection&0x10 == 0
	actSelected := s.selection&0x20 == 0

	switch {
	case dirSelected && actSelected:
		low = s.directionButtons & s.actionButtons
	case dirSelected:
		low = s.directionButtons
	case actSelected:
		low = s.actionButtons
	}

	return 0xC0 | s.selection | low
}

// Write stores the selection mask (bits 5 and 4 only).
func (s *State) Write(value uint8) {
	s.selection = value & 0x30
}

// KeyDown presses the given key: clears its latch bit (0 = pressed) and
// requests the Joypad interrupt.
func (s *State) KeyDown(key Key) {
	if key < 4 {
		s.directionButtons &^= 1 << key
	} else {
		s.actionButtons &^= 1 << (key - 4)
	}
	s.irq.Request(interrupts.JoypadBit)
}

// KeyUp releases the given key: sets its latch bit back to 1.
func (s *State) KeyUp(key Key) {
	if key < 4 {
		s.directionButtons |= 1 << key
	} else {
		s.actionButtons |= 1 << (key - 4)
	}
}
