package cpu

// condition evaluates one of the four branch conditions: NZ, Z, NC, C.
func (c *CPU) condition(idx uint8) bool {
	switch idx {
	case 0:
		return !c.flag(FlagZero)
	case 1:
		return c.flag(FlagZero)
	case 2:
		return !c.flag(FlagCarry)
	case 3:
		return c.flag(FlagCarry)
	}
	panic("cpu: invalid condition index")
}

// execBlock0 handles 00xxxxxx: the assorted block of spec.md §4.4.
func (c *CPU) execBlock0(opcode, y, z uint8) int {
	p := y >> 1
	q := y & 1

	switch z {
	case 0:
		switch {
		case y == 0: // NOP
			return 4
		case y == 1: // LD (a16),SP
			addr := c.fetch16()
			c.bus.Write(addr, uint8(c.SP))
			c.bus.Write(addr+1, uint8(c.SP>>8))
			return 20
		case y == 2: // STOP
			c.fetch8() // STOP is followed by an ignored padding byte
			c.stopped = true
			return 4
		case y == 3: // JR d8
			return c.jumpRelative(true)
		default: // JR cc,d8
			return c.jumpRelative(c.condition(y-4))
		}

	case 1:
		if q == 0 {
			c.setR16(p, c.fetch16())
			return 12
		}
		c.addHL(c.getR16(p))
		return 8

	case 2:
		addr := c.r16memAddr(p)
		if q == 0 {
			c.bus.Write(addr, c.A)
		} else {
			c.A = c.bus.Read(addr)
		}
		return 8

	case 3:
		if q == 0 {
			c.setR16(p, c.getR16(p)+1)
		} else {
			c.setR16(p, c.getR16(p)-1)
		}
		return 8

	case 4:
		c.setR8(y, c.inc8(c.getR8(y)))
		if y == r8HLInd {
			return 12
		}
		return 4

	case 5:
		c.setR8(y, c.dec8(c.getR8(y)))
		if y == r8HLInd {
			return 12
		}
		return 4

	case 6:
		c.setR8(y, c.fetch8())
		if y == r8HLInd {
			return 12
		}
		return 8

	case 7:
		return c.execAccumulatorOp(y)
	}
	panic("cpu: unreachable block0 z")
}

func (c *CPU) execAccumulatorOp(y uint8) int {
	switch y {
	case 0:
		c.rlca()
	case 1:
		c.rrca()
	case 2:
		c.rla()
	case 3:
		c.rra()
	case 4:
		c.daa()
	case 5:
		c.cpl()
	case 6:
		c.scf()
	case 7:
		c.ccf()
	}
	return 4
}

// jumpRelative reads the signed displacement byte (always consuming it,
// per the fetch-execute step) and, if taken, adjusts PC. Returns the
// instruction's total T-cycle cost.
func (c *CPU) jumpRelative(taken bool) int {
	e := int8(c.fetch8())
	if !taken {
		return 8
	}
	c.PC = uint16(int32(c.PC) + int32(e))
	return 12
}
