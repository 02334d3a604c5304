// Package cartridge implements ROM header parsing, the MBC variants of
// spec.md §4.1, and battery-backed RAM persistence.
package cartridge

import (
	"os"

	"github.com/cespare/xxhash"
	"github.com/pkg/errors"
)

// Cartridge owns the ROM image, the selected MBC, and the battery save
// path (if any). It is the sole owner of cartridge RAM; nothing outside
// this package ever mutates it directly.
type Cartridge struct {
	header Header
	mbc    *mbc

	savePath string
}

// New constructs a Cartridge from a raw ROM image. savePath, if non-empty,
// is where battery-backed RAM is loaded from on construction and written
// to on Save. Identifier derives a stable battery-file name from the ROM
// contents via xxhash, for callers that don't already have a save path.
func New(rom []byte, savePath string) (*Cartridge, error) {
	if len(rom)%0x4000 != 0 || len(rom) < 0x8000 {
		return nil, errors.New("cartridge: rom size must be a non-zero multiple of 16 KiB, at least 32 KiB")
	}

	header, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	kind, err := header.CartridgeType.kindOf()
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		header:   header,
		mbc:      newMBC(kind, rom, header.RAMSize),
		savePath: savePath,
	}

	if header.CartridgeType.hasBattery() && savePath != "" {
		if err := c.loadBattery(); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Identifier returns a stable hash of the ROM image, suitable for naming
// a battery save file when the caller has no path of its own.
func Identifier(rom []byte) string {
	h := xxhash.New()
	_, _ = h.Write(rom)
	return hex64(h.Sum64())
}

func hex64(v uint64) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = digits[v&0xF]
		v >>= 4
	}
	return string(buf)
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Read returns the byte at the given bus address, routed through the
// cartridge's MBC. addr must be in 0x0000-0x7FFF or 0xA000-0xBFFF.
func (c *Cartridge) Read(addr uint16) uint8 {
	return c.mbc.Read(addr)
}

// Write stores value at the given bus address, routed through the
// cartridge's MBC.
func (c *Cartridge) Write(addr uint16, value uint8) {
	c.mbc.Write(addr, value)
}

// HasBattery reports whether this cartridge persists RAM across runs.
func (c *Cartridge) HasBattery() bool {
	return c.header.CartridgeType.hasBattery()
}

func (c *Cartridge) loadBattery() error {
	data, err := os.ReadFile(c.savePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "cartridge: loading battery RAM")
	}
	copy(c.mbc.ram, data)
	return nil
}

// Save persists battery-backed RAM to savePath. It is a no-op for
// cartridges without a battery or without a configured save path.
func (c *Cartridge) Save() error {
	if !c.HasBattery() || c.savePath == "" {
		return nil
	}
	if err := os.WriteFile(c.savePath, c.mbc.ram, 0o644); err != nil {
		return errors.Wrap(err, "cartridge: saving battery RAM")
	}
	return nil
}
