package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thornewood/gbcore/internal/cpu"
	"github.com/thornewood/gbcore/internal/interrupts"
)

// flatBus is a trivial 64 KiB RAM bus for isolating CPU behavior in tests.
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) Read(addr uint16) uint8     { return b.mem[addr] }
func (b *flatBus) Write(addr uint16, v uint8) { b.mem[addr] = v }

func (b *flatBus) readReturnAddr(sp uint16) uint16 {
	lo := b.mem[sp]
	hi := b.mem[sp+1]
	return uint16(hi)<<8 | uint16(lo)
}

func newCPU(program ...uint8) (*cpu.CPU, *flatBus, *interrupts.Controller) {
	bus := &flatBus{}
	copy(bus.mem[0x0100:], program)
	irq := interrupts.NewController()
	c := cpu.New(bus, irq)
	return c, bus, irq
}

func TestScenario1AddOverflow(t *testing.T) {
	c, _, _ := newCPU(0x80) // ADD A,B
	c.A = 0x3A
	c.B = 0xC6
	c.Step()

	require.Equal(t, uint8(0x00), c.A)
	require.True(t, c.Flag(cpu.FlagZero))
	require.False(t, c.Flag(cpu.FlagSubtract))
	require.True(t, c.Flag(cpu.FlagHalfCarry))
	require.True(t, c.Flag(cpu.FlagCarry))
}

func TestScenario2DAA(t *testing.T) {
	c, _, _ := newCPU(0x27) // DAA
	c.A = 0x3B
	c.F = 0
	c.Step()

	require.Equal(t, uint8(0x41), c.A)
	require.False(t, c.Flag(cpu.FlagHalfCarry))
}

func TestScenario3IncOverflow(t *testing.T) {
	c, _, _ := newCPU(0x3C) // INC A
	c.A = 0xFF
	c.F = 0
	c.Step()

	require.Equal(t, uint8(0x00), c.A)
	require.True(t, c.Flag(cpu.FlagZero))
	require.False(t, c.Flag(cpu.FlagSubtract))
	require.True(t, c.Flag(cpu.FlagHalfCarry))
	require.False(t, c.Flag(cpu.FlagCarry))
}

func TestScenario4LoadHLFromSPPlusOffset(t *testing.T) {
	c, _, _ := newCPU(0xF8, 0x02) // LD HL,SP+2
	c.SP = 0xFFF8
	c.Step()

	require.Equal(t, uint16(0xFFFA), c.HL.Uint16())
	require.False(t, c.Flag(cpu.FlagZero))
	require.False(t, c.Flag(cpu.FlagSubtract))
	require.False(t, c.Flag(cpu.FlagHalfCarry))
	require.False(t, c.Flag(cpu.FlagCarry))
}

func TestScenario5VBlankDispatch(t *testing.T) {
	c, bus, irq := newCPU(0x00) // NOP, never reached: interrupt services first
	irq.IME = true
	irq.Flag = 0x05
	irq.Enable = 0x05
	c.SP = 0xFFFE
	c.PC = 0x1234

	cycles := c.Step()

	require.Equal(t, 20, cycles)
	require.Equal(t, uint8(0x04), irq.Flag)
	require.False(t, irq.IME)
	require.Equal(t, uint16(0x0040), c.PC)
	require.Equal(t, uint16(0x1234), bus.readReturnAddr(c.SP))
}

func TestCallRetBalancesStack(t *testing.T) {
	c, bus, _ := newCPU(0xCD, 0x10, 0x01, 0x00, 0x00) // CALL 0x0110; NOP; NOP
	c.PC = 0x0100
	bus.mem[0x0110] = 0xC9 // RET

	spBefore := c.SP
	c.Step() // CALL
	require.Equal(t, uint16(0x0110), c.PC)
	c.Step() // RET
	require.Equal(t, uint16(0x0103), c.PC)
	require.Equal(t, spBefore, c.SP)
}

func TestPushPopPreservesValueWithZeroedFNibble(t *testing.T) {
	c, _, _ := newCPU(0xC5, 0xF1) // PUSH BC; POP AF
	c.B = 0x12
	c.C = 0x3F // low nibble of F must zero out after POP AF
	c.Step()   // PUSH BC
	c.Step()   // POP AF

	require.Equal(t, uint16(0x1230), c.AF.Uint16())
}

func TestDeferredEIEnablesAfterNextInstruction(t *testing.T) {
	c, _, irq := newCPU(0xFB, 0x00, 0x00) // EI; NOP; NOP
	c.Step()                              // EI: scheduled, not yet active
	require.False(t, irq.IME)
	c.Step() // NOP: commits the scheduled enable
	require.True(t, irq.IME)
}

func TestHaltReleasesOnPendingInterruptWithoutIME(t *testing.T) {
	c, _, irq := newCPU(0x76, 0x00) // HALT; NOP
	c.Step()                        // HALT
	require.True(t, c.Halted())

	irq.Flag = 0x01
	irq.Enable = 0x01
	c.Step() // releases halt; IME is false so the handler is not invoked
	require.False(t, c.Halted())
}

func TestNewCPUHasPowerOnRegisterDefaults(t *testing.T) {
	c, _, _ := newCPU()
	require.Equal(t, uint8(0x01), c.A)
	require.Equal(t, uint8(0xB0), c.F)
	require.Equal(t, uint8(0x00), c.B)
	require.Equal(t, uint8(0x13), c.C)
	require.Equal(t, uint8(0x00), c.D)
	require.Equal(t, uint8(0xD8), c.E)
	require.Equal(t, uint8(0x01), c.H)
	require.Equal(t, uint8(0x4D), c.L)
	require.Equal(t, uint16(0x0100), c.PC)
	require.Equal(t, uint16(0xFFFE), c.SP)
}

func TestSwapTwiceIsIdentity(t *testing.T) {
	c, _, _ := newCPU(0xCB, 0x37, 0xCB, 0x37) // SWAP A; SWAP A
	c.A = 0x42
	c.Step()
	c.Step()
	require.Equal(t, uint8(0x42), c.A)
	require.Equal(t, uint8(0), c.F)
}

func TestSetThenBitLeavesExpectedFlags(t *testing.T) {
	c, _, _ := newCPU(0xCB, 0xC0, 0xCB, 0x40) // SET 0,B; BIT 0,B
	c.F = 0xF0
	c.Step()
	c.Step()
	require.False(t, c.Flag(cpu.FlagZero))
	require.False(t, c.Flag(cpu.FlagSubtract))
	require.True(t, c.Flag(cpu.FlagHalfCarry))
}

func TestCPMatchesSubFlagsAndLeavesAUnchanged(t *testing.T) {
	cSub, _, _ := newCPU(0x90) // SUB B
	cSub.A, cSub.B = 0x10, 0x01
	cSub.Step()

	cCp, _, _ := newCPU(0xB8) // CP B
	cCp.A, cCp.B = 0x10, 0x01
	cCp.Step()

	require.Equal(t, uint8(0x10), cCp.A)
	require.Equal(t, cSub.F, cCp.F)
}

func TestIncDecRoundTripPreservesCarry(t *testing.T) {
	c, _, _ := newCPU(0x3C, 0x3D) // INC A; DEC A
	c.A = 0x0F
	c.F = 1 << cpu.FlagCarry
	c.Step()
	c.Step()
	require.Equal(t, uint8(0x0F), c.A)
	require.True(t, c.Flag(cpu.FlagCarry))
}
