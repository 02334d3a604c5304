package cpu

import "github.com/thornewood/gbcore/internal/bits"

// Flag is a bit position within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

func boolBit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

// setFlag sets or clears a single flag bit, keeping F's low nibble at 0.
func (c *CPU) setFlag(flag Flag, value bool) {
	if value {
		c.F = bits.Set(c.F, flag)
	} else {
		c.F = bits.Reset(c.F, flag)
	}
	c.F &= 0xF0
}

func (c *CPU) flag(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// Flag reports whether the given flag bit is set, for tests and diagnostics.
func (c *CPU) Flag(flag Flag) bool {
	return c.flag(flag)
}

// setFlags sets all four flags at once, in Z,N,H,C order.
func (c *CPU) setFlags(z, n, h, cy bool) {
	c.F = boolBit(z)<<FlagZero | boolBit(n)<<FlagSubtract | boolBit(h)<<FlagHalfCarry | boolBit(cy)<<FlagCarry
}
