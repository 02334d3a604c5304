package cpu

// execBlock2 handles 10xxxxxx: <op> A,r8 where op is selected by y.
func (c *CPU) execBlock2(y, z uint8) int {
	x := c.getR8(z)
	c.aluOp(y, x)
	if z == r8HLInd {
		return 8
	}
	return 4
}

// aluOp applies one of the eight ALU operations (by the same y encoding
// used for both the register and immediate forms) to A.
func (c *CPU) aluOp(op uint8, x uint8) {
	switch op {
	case 0:
		c.add8(x)
	case 1:
		c.adc8(x)
	case 2:
		c.subAssign(x)
	case 3:
		c.sbc8(x)
	case 4:
		c.and8(x)
	case 5:
		c.xor8(x)
	case 6:
		c.or8(x)
	case 7:
		c.cp8(x)
	default:
		panic("cpu: invalid alu op")
	}
}
