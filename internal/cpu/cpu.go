// Package cpu implements the Sharp LR35902 instruction interpreter
// described in spec.md §4.4: fetch-execute stepping, the four opcode
// blocks plus the CB-prefixed block, ALU flag contracts, stack discipline,
// and deferred-enable interrupt servicing.
package cpu

import "github.com/thornewood/gbcore/internal/interrupts"

// Bus is the subset of internal/bus.Bus the CPU needs: byte-addressable
// read/write over the full 16-bit space.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// CPU is the Sharp LR35902 instruction interpreter.
type CPU struct {
	Registers
	PC uint16
	SP uint16

	halted bool
	stopped bool

	bus Bus
	irq *interrupts.Controller
}

// New returns a CPU wired to the given bus and interrupt controller, with
// registers and PC/SP at their post-boot-ROM values.
func New(bus Bus, irq *interrupts.Controller) *CPU {
	c := &CPU{
		Registers: NewRegisters(),
		PC:        0x0100,
		SP:        0xFFFE,
		bus:       bus,
		irq:       irq,
	}
	return c
}

// Step services a pending interrupt if one is due, then executes one
// instruction (or idles one cycle if halted/stopped), returning the
// number of T-cycles consumed.
func (c *CPU) Step() int {
	if cycles, serviced := c.serviceInterrupt(); serviced {
		return cycles
	}

	if c.halted {
		if c.irq.Pending() {
			c.halted = false
		} else {
			return 4
		}
	}

	if c.stopped {
		if c.irq.Pending() {
			c.stopped = false
		} else {
			return 4
		}
	}

	opcode := c.fetch8()
	cycles := c.execute(opcode)
	c.irq.CommitScheduled()
	return cycles
}

// serviceInterrupt dispatches the highest-priority pending interrupt if
// IME is set, per spec.md §4.4. It runs before decode on every step,
// including while halted.
func (c *CPU) serviceInterrupt() (int, bool) {
	if !c.irq.IME {
		return 0, false
	}
	addr, bit, ok := c.irq.NextVector()
	if !ok {
		return 0, false
	}

	c.irq.Clear(bit)
	c.irq.IME = false
	c.halted = false
	c.push16(c.PC)
	c.PC = addr
	return 20, true
}

func (c *CPU) fetch8() uint8 {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push16(value uint16) {
	c.SP--
	c.bus.Write(c.SP, uint8(value>>8))
	c.SP--
	c.bus.Write(c.SP, uint8(value))
}

func (c *CPU) pop16() uint16 {
	lo := c.bus.Read(c.SP)
	c.SP++
	hi := c.bus.Read(c.SP)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Halted reports whether HALT is currently in effect, for tests and
// diagnostics.
func (c *CPU) Halted() bool { return c.halted }
