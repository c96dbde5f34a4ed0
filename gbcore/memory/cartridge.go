package memory

import "fmt"

const (
	titleAddress         = 0x134
	titleLength          = 16
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149
)

// maxROMSize is the implementation's maximum supported cartridge size
// (spec §7 error kind RomTooLarge).
const maxROMSize = 2 * 1024 * 1024

// Cartridge inspects a ROM header enough to pick an MBC and its bank
// counts; it never parses beyond that (out of scope per spec §1). The
// backing byte slice is borrowed from the caller, not copied.
type Cartridge struct {
	data []byte

	title        string
	mbcKind      MBCKind
	hasBattery   bool
	hasRTC       bool
	ramBankCount uint8
}

// NewCartridge parses the header of a borrowed ROM image. The returned
// Cartridge holds onto the same slice; the caller must keep it alive for
// as long as any MMU built from it is in use.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) <= ramSizeAddress {
		return nil, fmt.Errorf("rom too short to contain a header: %w", ErrRomTooSmall)
	}

	kind, hasBattery, hasRTC, err := classifyCartridgeType(data[cartridgeTypeAddress])
	if err != nil {
		return nil, err
	}

	romSizeClass := data[romSizeAddress]
	declaredSize := 0x8000 << romSizeClass
	if declaredSize > maxROMSize {
		return nil, fmt.Errorf("header declares rom size class 0x%02X: %w", romSizeClass, ErrRomTooLarge)
	}
	if len(data) < declaredSize {
		return nil, fmt.Errorf("rom is %d bytes, header declares %d: %w", len(data), declaredSize, ErrRomTooSmall)
	}
	if len(data) > maxROMSize {
		return nil, fmt.Errorf("rom is %d bytes, maximum supported is %d: %w", len(data), maxROMSize, ErrRomTooLarge)
	}

	end := titleAddress + titleLength
	if end > len(data) {
		end = len(data)
	}

	return &Cartridge{
		data:         data,
		title:        cleanGameboyTitle(data[titleAddress:end]),
		mbcKind:      kind,
		hasBattery:   hasBattery,
		hasRTC:       hasRTC,
		ramBankCount: ramBankCountForClass(data[ramSizeAddress]),
	}, nil
}

// Title returns the cleaned-up cartridge title from the ROM header.
func (c *Cartridge) Title() string {
	return c.title
}

func classifyCartridgeType(t uint8) (kind MBCKind, hasBattery, hasRTC bool, err error) {
	switch t {
	case 0x00:
		return MBCNone, false, false, nil
	case 0x01, 0x02:
		return MBCOne, false, false, nil
	case 0x03:
		return MBCOne, true, false, nil
	case 0x0F, 0x10:
		return MBCThree, true, true, nil
	case 0x11, 0x12:
		return MBCThree, false, false, nil
	case 0x13:
		return MBCThree, true, false, nil
	case 0x19, 0x1A, 0x1C, 0x1D:
		return MBCFive, false, false, nil
	case 0x1B, 0x1E:
		return MBCFive, true, false, nil
	default:
		return 0, false, false, fmt.Errorf("cartridge type 0x%02X: %w", t, ErrUnsupportedCartridge)
	}
}

func ramBankCountForClass(class uint8) uint8 {
	switch class {
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	default:
		return 0
	}
}
