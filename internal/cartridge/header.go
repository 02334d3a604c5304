package cartridge

import (
	"strings"

	"github.com/pkg/errors"
)

// Type selects which MBC variant a cartridge uses, per spec.md §3/§4.1.
// The byte values mirror the real hardware assignment at 0x0147, which is
// the only source spec.md cites for this field.
type Type uint8

const (
	ROMOnly         Type = 0x00
	MBC1            Type = 0x01
	MBC1RAM         Type = 0x02
	MBC1RAMBattery  Type = 0x03
	MBC2            Type = 0x05
	MBC2Battery     Type = 0x06
)

func (t Type) String() string {
	switch t {
	case ROMOnly:
		return "ROM_ONLY"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBattery:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC2Battery:
		return "MBC2+BATTERY"
	default:
		return "UNKNOWN"
	}
}

// hasBattery reports whether this cartridge type persists RAM.
func (t Type) hasBattery() bool {
	return t == MBC1RAMBattery || t == MBC2Battery
}

// hasRAM reports whether this cartridge type carries external RAM at all.
func (t Type) hasRAM() bool {
	switch t {
	case MBC1RAM, MBC1RAMBattery, MBC2, MBC2Battery:
		return true
	default:
		return false
	}
}

// kindOf maps a cartridge Type to the MBC tag that implements it.
func (t Type) kindOf() (mbcKind, error) {
	switch t {
	case ROMOnly:
		return kindROMOnly, nil
	case MBC1, MBC1RAM, MBC1RAMBattery:
		return kindMBC1, nil
	case MBC2, MBC2Battery:
		return kindMBC2, nil
	default:
		return 0, errors.Errorf("cartridge: unknown cartridge type %#02x", uint8(t))
	}
}

// ramSizeForCode maps header byte 0x0149 to a RAM size in bytes, per the
// table in spec.md §3. This is the spec's own table, not the usual
// real-hardware RAM-size-code table.
func ramSizeForCode(code uint8) (int, error) {
	switch code {
	case 0:
		return 0, nil
	case 2:
		return 1 * 1024, nil
	case 3:
		return 4 * 1024, nil
	case 4:
		return 16 * 1024, nil
	case 5:
		return 8 * 1024, nil
	case 6:
		return 512, nil
	default:
		return 0, errors.Errorf("cartridge: unknown RAM size code %#02x", code)
	}
}

// Header is the subset of the 0x0100-0x014F cartridge header spec.md reads.
type Header struct {
	Title         string
	CartridgeType Type
	RAMSize       int
}

// parseHeader parses the fields spec.md §6 names out of a full ROM image.
func parseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, errors.New("cartridge: rom too small to contain a header")
	}

	title := strings.TrimRight(string(rom[0x134:0x134+15]), "\x00")

	cartType := Type(rom[0x147])
	if _, err := cartType.kindOf(); err != nil {
		return Header{}, err
	}

	ramSize, err := ramSizeForCode(rom[0x149])
	if err != nil {
		return Header{}, err
	}

	// MBC2 carries a fixed 512-nibble internal RAM array regardless of the
	// header's RAM-size byte (spec.md §4.1).
	if cartType == MBC2 || cartType == MBC2Battery {
		ramSize = 512
	}

	return Header{
		Title:         title,
		CartridgeType: cartType,
		RAMSize:       ramSize,
	}, nil
}
