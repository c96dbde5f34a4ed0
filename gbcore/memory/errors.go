package memory

import "errors"

// Sentinel errors surfaced only from cartridge loading (spec §7). Every
// other memory access in the core is total and never returns an error.
var (
	ErrUnsupportedCartridge = errors.New("unsupported cartridge type")
	ErrRomTooSmall          = errors.New("rom smaller than its header's declared size class")
	ErrRomTooLarge          = errors.New("rom exceeds the implementation's maximum supported size")
)
