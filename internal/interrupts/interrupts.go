// Package interrupts holds the interrupt-enable/interrupt-flag registers
// and the CPU's master interrupt-enable latch, along with the fixed
// priority order and vector table the CPU dispatches through.
package interrupts

// Address is the handler address an interrupt vectors to.
type Address = uint16

const (
	VBlank Address = 0x0040
	LCD    Address = 0x0048
	Timer  Address = 0x0050
	Serial Address = 0x0058
	Joypad Address = 0x0060
)

// Bit is the position of an interrupt source within IF/IE, and also its
// priority: lower bits are serviced first.
type Bit = uint8

const (
	VBlankBit Bit = 0
	LCDBit    Bit = 1
	TimerBit  Bit = 2
	SerialBit Bit = 3
	JoypadBit Bit = 4
)

const (
	// FlagRegister is IF at 0xFF0F.
	FlagRegister uint16 = 0xFF0F
	// EnableRegister is IE at 0xFFFF.
	EnableRegister uint16 = 0xFFFF
)

var vectors = [5]Address{VBlank, LCD, Timer, Serial, Joypad}

// Controller holds IE, IF and IME.
type Controller struct {
	Flag   uint8
	Enable uint8
	IME    bool

	// EI's effect is delayed by one full instruction (§4.4). imeScheduled
	// is set the step EI executes and promoted to imeArmed at that same
	// step's commit; imeArmed then becomes IME at the commit following the
	// *next* instruction, so IME only turns on once that instruction has
	// fully executed.
	imeScheduled bool
	imeArmed     bool
}

// NewController returns a Controller with IME disabled and no pending
// requests, matching power-on state.
func NewController() *Controller {
	return &Controller{}
}

// Request ORs the given interrupt's bit into IF.
func (c *Controller) Request(bit Bit) {
	c.Flag |= 1 << bit
}

// Clear clears the given interrupt's bit in IF.
func (c *Controller) Clear(bit Bit) {
	c.Flag &^= 1 << bit
}

// Pending reports whether any enabled interrupt is requested, independent
// of IME — used to release HALT.
func (c *Controller) Pending() bool {
	return c.Enable&c.Flag&0x1F != 0
}

// ScheduleEnable arms the deferred IME-enable latch set by EI.
func (c *Controller) ScheduleEnable() {
	c.imeScheduled = true
}

// CommitScheduled advances the deferred-enable latch by one step. Called
// once per CPU step after the instruction has executed, including the
// step EI itself runs in: a latch set by *this* step's execute() becomes
// imeArmed now and is promoted to IME at the end of the next step, giving
// EI its documented one-instruction delay.
func (c *Controller) CommitScheduled() {
	if c.imeArmed {
		c.IME = true
		c.imeArmed = false
	}
	c.imeArmed = c.imeScheduled
	c.imeScheduled = false
}

// Disable clears IME immediately (DI) and cancels any pending or armed EI.
func (c *Controller) Disable() {
	c.IME = false
	c.imeScheduled = false
	c.imeArmed = false
}

// NextVector returns the vector and bit of the highest-priority pending,
// enabled interrupt, and ok=false if none is pending.
func (c *Controller) NextVector() (addr Address, bit Bit, ok bool) {
	pending := c.Enable & c.Flag & 0x1F
	if pending == 0 {
		return 0, 0, false
	}
	for b := Bit(0); b < 5; b++ {
		if pending&(1<<b) != 0 {
			return vectors[b], b, true
		}
	}
	panic("interrupts: unreachable")
}

// Read returns the byte stored at the given register address. The upper
// three bits of IF always read back set.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case FlagRegister:
		return c.Flag&0x1F | 0xE0
	case EnableRegister:
		return c.Enable
	}
	panic("interrupts: illegal read")
}

// Write stores the given byte at the register address.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case FlagRegister:
		c.Flag = value & 0x1F
	case EnableRegister:
		c.Enable = value
	default:
		panic("interrupts: illegal write")
	}
}
