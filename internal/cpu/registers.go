package cpu

// Register is an 8-bit CPU register.
type Register = uint8

// RegisterPair views two 8-bit registers as a single 16-bit value, high
// byte first, the way BC/DE/HL/AF are addressed by 16-bit instructions.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the pair's combined value.
func (p *RegisterPair) Uint16() uint16 {
	return uint16(*p.High)<<8 | uint16(*p.Low)
}

// SetUint16 stores a combined value into the pair's two bytes.
func (p *RegisterPair) SetUint16(value uint16) {
	*p.High = uint8(value >> 8)
	*p.Low = uint8(value)
}

// Registers holds the eight 8-bit registers and the four 16-bit pair
// views over them.
type Registers struct {
	A, B, C, D, E, F, H, L Register

	BC, DE, HL, AF *RegisterPair
}

// NewRegisters returns the register file at its power-on values (spec.md
// §3: A=0x01, F=0xB0, B=0x00, C=0x13, D=0x00, E=0xD8, H=0x01, L=0x4D), with
// its pair views wired to the underlying bytes. This implementation has no
// boot ROM, so these are the first values a cartridge's own code observes.
func NewRegisters() Registers {
	r := Registers{
		A: 0x01,
		F: 0xB0,
		B: 0x00,
		C: 0x13,
		D: 0x00,
		E: 0xD8,
		H: 0x01,
		L: 0x4D,
	}
	r.BC = &RegisterPair{High: &r.B, Low: &r.C}
	r.DE = &RegisterPair{High: &r.D, Low: &r.E}
	r.HL = &RegisterPair{High: &r.H, Low: &r.L}
	r.AF = &RegisterPair{High: &r.A, Low: &r.F}
	return r
}

// r8 indices, per spec.md §4.4's 3-bit encoding: 0=B,1=C,2=D,3=E,4=H,5=L,
// 6=(HL),7=A.
const (
	r8B = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HLInd
	r8A
)

// r16 indices, per the 2-bit encoding: BC, DE, HL, SP.
const (
	r16BC = iota
	r16DE
	r16HL
	r16SP
)

// r16mem indices: BC, DE, HL+, HL-.
const (
	r16memBC = iota
	r16memDE
	r16memHLInc
	r16memHLDec
)

// r16stk indices: BC, DE, HL, AF.
const (
	r16stkBC = iota
	r16stkDE
	r16stkHL
	r16stkAF
)

// getR8 reads an 8-bit operand by r8 index, reading through (HL) for index 6.
func (c *CPU) getR8(idx uint8) uint8 {
	switch idx {
	case r8B:
		return c.B
	case r8C:
		return c.C
	case r8D:
		return c.D
	case r8E:
		return c.E
	case r8H:
		return c.H
	case r8L:
		return c.L
	case r8HLInd:
		return c.bus.Read(c.HL.Uint16())
	case r8A:
		return c.A
	}
	panic("cpu: invalid r8 index")
}

// setR8 stores an 8-bit operand by r8 index, writing through (HL) for index 6.
func (c *CPU) setR8(idx uint8, value uint8) {
	switch idx {
	case r8B:
		c.B = value
	case r8C:
		c.C = value
	case r8D:
		c.D = value
	case r8E:
		c.E = value
	case r8H:
		c.H = value
	case r8L:
		c.L = value
	case r8HLInd:
		c.bus.Write(c.HL.Uint16(), value)
	case r8A:
		c.A = value
	default:
		panic("cpu: invalid r8 index")
	}
}

func (c *CPU) getR16(idx uint8) uint16 {
	switch idx {
	case r16BC:
		return c.BC.Uint16()
	case r16DE:
		return c.DE.Uint16()
	case r16HL:
		return c.HL.Uint16()
	case r16SP:
		return c.SP
	}
	panic("cpu: invalid r16 index")
}

func (c *CPU) setR16(idx uint8, value uint16) {
	switch idx {
	case r16BC:
		c.BC.SetUint16(value)
	case r16DE:
		c.DE.SetUint16(value)
	case r16HL:
		c.HL.SetUint16(value)
	case r16SP:
		c.SP = value
	default:
		panic("cpu: invalid r16 index")
	}
}

// r16memAddr returns the memory address an r16mem operand names, applying the
// HL post-increment/decrement where relevant.
func (c *CPU) r16memAddr(idx uint8) uint16 {
	switch idx {
	case r16memBC:
		return c.BC.Uint16()
	case r16memDE:
		return c.DE.Uint16()
	case r16memHLInc:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr + 1)
		return addr
	case r16memHLDec:
		addr := c.HL.Uint16()
		c.HL.SetUint16(addr - 1)
		return addr
	}
	panic("cpu: invalid r16mem index")
}

func (c *CPU) getR16stk(idx uint8) uint16 {
	switch idx {
	case r16stkBC:
		return c.BC.Uint16()
	case r16stkDE:
		return c.DE.Uint16()
	case r16stkHL:
		return c.HL.Uint16()
	case r16stkAF:
		return c.AF.Uint16()
	}
	panic("cpu: invalid r16stk index")
}

func (c *CPU) setR16stk(idx uint8, value uint16) {
	switch idx {
	case r16stkBC:
		c.BC.SetUint16(value)
	case r16stkDE:
		c.DE.SetUint16(value)
	case r16stkHL:
		c.HL.SetUint16(value)
	case r16stkAF:
		c.AF.SetUint16(value & 0xFFF0) // low nibble of F is always 0
	default:
		panic("cpu: invalid r16stk index")
	}
}
