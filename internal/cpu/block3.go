package cpu

// execBlock3 handles 11xxxxxx: conditional returns, stack ops, jumps,
// calls, restarts, immediate ALU forms, LDH, SP arithmetic, DI/EI, and
// the 0xCB prefix.
func (c *CPU) execBlock3(opcode, y, z uint8) int {
	p := y >> 1
	q := y & 1

	switch z {
	case 0:
		switch {
		case y <= 3: // RET cc
			if c.condition(y) {
				c.PC = c.pop16()
				return 20
			}
			return 8
		case y == 4: // LDH (a8),A
			addr := 0xFF00 + uint16(c.fetch8())
			c.bus.Write(addr, c.A)
			return 12
		case y == 5: // ADD SP,e8
			c.SP = c.addSPSigned(int8(c.fetch8()))
			return 16
		case y == 6: // LDH A,(a8)
			addr := 0xFF00 + uint16(c.fetch8())
			c.A = c.bus.Read(addr)
			return 12
		default: // y == 7: LD HL,SP+e8
			c.HL.SetUint16(c.addSPSigned(int8(c.fetch8())))
			return 12
		}

	case 1:
		if q == 0 {
			c.setR16stk(p, c.pop16())
			return 12
		}
		switch p {
		case 0: // RET
			c.PC = c.pop16()
			return 16
		case 1: // RETI
			c.PC = c.pop16()
			c.irq.IME = true
			return 16
		case 2: // JP HL
			c.PC = c.HL.Uint16()
			return 4
		default: // LD SP,HL
			c.SP = c.HL.Uint16()
			return 8
		}

	case 2:
		switch {
		case y <= 3: // JP cc,a16
			addr := c.fetch16()
			if c.condition(y) {
				c.PC = addr
				return 16
			}
			return 12
		case y == 4: // LD (C),A
			c.bus.Write(0xFF00+uint16(c.C), c.A)
			return 8
		case y == 5: // LD (a16),A
			c.bus.Write(c.fetch16(), c.A)
			return 16
		case y == 6: // LD A,(C)
			c.A = c.bus.Read(0xFF00 + uint16(c.C))
			return 8
		default: // LD A,(a16)
			c.A = c.bus.Read(c.fetch16())
			return 16
		}

	case 3:
		switch y {
		case 0: // JP a16
			c.PC = c.fetch16()
			return 16
		case 1: // CB prefix
			return c.execCB()
		case 6: // DI
			c.irq.Disable()
			return 4
		case 7: // EI
			c.irq.ScheduleEnable()
			return 4
		default:
			panic("cpu: illegal opcode")
		}

	case 4:
		if y > 3 {
			panic("cpu: illegal opcode")
		}
		addr := c.fetch16()
		if c.condition(y) {
			c.push16(c.PC)
			c.PC = addr
			return 24
		}
		return 12

	case 5:
		if q == 0 {
			c.push16(c.getR16stk(p))
			return 16
		}
		if p == 0 { // CALL a16
			addr := c.fetch16()
			c.push16(c.PC)
			c.PC = addr
			return 24
		}
		panic("cpu: illegal opcode")

	case 6:
		c.aluOp(y, c.fetch8())
		return 8

	default: // z == 7: RST
		c.push16(c.PC)
		c.PC = uint16(y) * 8
		return 16
	}
}
