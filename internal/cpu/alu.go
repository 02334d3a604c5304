package cpu

// The ALU operations below implement the flag contracts of spec.md §4.4
// exactly. The accumulator operations store their result in A (CP
// discards it); inc8/dec8 return the new value for the caller to store,
// and addHL writes HL.

func (c *CPU) add8(x uint8) {
	a := c.A
	result := uint16(a) + uint16(x)
	c.setFlags(uint8(result) == 0, false, (a&0xF)+(x&0xF) > 0xF, result > 0xFF)
	c.A = uint8(result)
}

func (c *CPU) adc8(x uint8) {
	a := c.A
	carry := boolBit(c.flag(FlagCarry))
	result := uint16(a) + uint16(x) + uint16(carry)
	h := (a&0xF)+(x&0xF)+carry > 0xF
	c.setFlags(uint8(result) == 0, false, h, result > 0xFF)
	c.A = uint8(result)
}

func (c *CPU) sub8(x uint8) uint8 {
	a := c.A
	result := a - x
	c.setFlags(result == 0, true, (a&0xF) < (x&0xF), x > a)
	return result
}

func (c *CPU) subAssign(x uint8) {
	c.A = c.sub8(x)
}

func (c *CPU) sbc8(x uint8) {
	a := c.A
	carry := boolBit(c.flag(FlagCarry))
	result := int(a) - int(x) - int(carry)
	h := int(a&0xF)-int(x&0xF)-int(carry) < 0
	c.setFlags(uint8(result) == 0, true, h, result < 0)
	c.A = uint8(result)
}

func (c *CPU) and8(x uint8) {
	c.A &= x
	c.setFlags(c.A == 0, false, true, false)
}

func (c *CPU) or8(x uint8) {
	c.A |= x
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) xor8(x uint8) {
	c.A ^= x
	c.setFlags(c.A == 0, false, false, false)
}

func (c *CPU) cp8(x uint8) {
	c.sub8(x)
}

func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, v&0xF == 0xF)
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagSubtract, true)
	c.setFlag(FlagHalfCarry, v&0xF == 0)
	return result
}

func (c *CPU) addHL(x uint16) {
	hl := c.HL.Uint16()
	result := uint32(hl) + uint32(x)
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, (hl&0xFFF)+(x&0xFFF) > 0xFFF)
	c.setFlag(FlagCarry, result > 0xFFFF)
	c.HL.SetUint16(uint16(result))
}

// addSPSigned implements the shared arithmetic for ADD SP,e8 and
// LD HL,SP+e8: both set Z=0, N=0; H is the carry out of bit 3 and C the
// carry out of bit 7 when SP's low byte is added to the immediate's.
func (c *CPU) addSPSigned(e int8) uint16 {
	sp := c.SP
	e16 := uint16(int16(e))
	result := sp + e16
	c.setFlags(false, false,
		(sp&0xF)+(e16&0xF) > 0xF,
		(sp&0xFF)+(e16&0xFF) > 0xFF,
	)
	return result
}

// daa implements the decimal adjust described in spec.md §4.4 and §9: the
// ADD branch never clears a carry that is already set.
func (c *CPU) daa() {
	a := c.A
	if !c.flag(FlagSubtract) {
		if c.flag(FlagCarry) || a > 0x99 {
			a += 0x60
			c.setFlag(FlagCarry, true)
		}
		if c.flag(FlagHalfCarry) || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c.flag(FlagCarry) {
			a -= 0x60
		}
		if c.flag(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.A = a
	c.setFlag(FlagZero, a == 0)
	c.setFlag(FlagHalfCarry, false)
}

func (c *CPU) cpl() {
	c.A = ^c.A
	c.setFlag(FlagSubtract, true)
	c.setFlag(FlagHalfCarry, true)
}

func (c *CPU) scf() {
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.setFlag(FlagCarry, true)
}

func (c *CPU) ccf() {
	c.setFlag(FlagSubtract, false)
	c.setFlag(FlagHalfCarry, false)
	c.setFlag(FlagCarry, !c.flag(FlagCarry))
}
