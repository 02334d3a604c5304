package cpu

// execBlock1 handles 01xxxxxx: LD r8,r8, with 0x76 reinterpreted as HALT.
func (c *CPU) execBlock1(y, z uint8) int {
	if y == r8HLInd && z == r8HLInd {
		c.halted = true
		return 4
	}
	c.setR8(y, c.getR8(z))
	if y == r8HLInd || z == r8HLInd {
		return 8
	}
	return 4
}
