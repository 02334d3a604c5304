package cpu

// execCB decodes and runs one CB-prefixed opcode, returning its T-cycle
// cost (already inclusive of the 0xCB prefix byte).
func (c *CPU) execCB() int {
	opcode := c.fetch8()
	group := opcode >> 6
	y := (opcode >> 3) & 0x07
	z := opcode & 0x07

	switch group {
	case 0: // rotate/shift/swap
		v := c.getR8(z)
		c.setR8(z, c.shiftOp(y, v))
	case 1: // BIT n,r8
		c.bit(y, c.getR8(z))
	case 2: // RES n,r8
		c.setR8(z, c.getR8(z)&^(1<<y))
	case 3: // SET n,r8
		c.setR8(z, c.getR8(z)|(1<<y))
	}
	return cbCycles(opcode)
}

func (c *CPU) shiftOp(op, v uint8) uint8 {
	switch op {
	case 0:
		return c.rlc(v)
	case 1:
		return c.rrc(v)
	case 2:
		return c.rl(v)
	case 3:
		return c.rr(v)
	case 4:
		return c.sla(v)
	case 5:
		return c.sra(v)
	case 6:
		return c.swap(v)
	case 7:
		return c.srl(v)
	}
	panic("cpu: invalid cb shift op")
}

// bit tests bit n of v: Z = !bit, N=0, H=1, C unchanged.
func (c *CPU) bit(n, v uint8) {
	c.setFlag(FlagZero, v&(1<<n) == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, true)
}
