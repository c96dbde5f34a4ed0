// Package serial implements the SB/SC link port as the simple
// synchronous "pending flag" latch spec'd for this core: the full link
// transport (clocking, peer timing) is an external collaborator.
package serial

import (
	"log/slog"

	"github.com/kbecker/gbcore/gbcore/addr"
)

// Port is the minimal SB/SC device: a byte latch plus a pending flag, no
// transfer timing. Handy for Blargg-style test ROMs that poll it.
type Port struct {
	sb, sc  byte
	pending bool
	logger  *slog.Logger
	line    []byte
}

// New creates a reset serial port.
func New() *Port {
	return &Port{logger: slog.Default()}
}

// Write handles 0xFF01/0xFF02. Writing 0x81 to SC latches SB and raises
// the pending flag; the bool return reports whether that transition just
// happened, so the MMU can raise the Serial interrupt bit.
func (p *Port) Write(address uint16, value byte) (raised bool) {
	switch address {
	case addr.SB:
		p.sb = value
	case addr.SC:
		p.sc = value
		if value == 0x81 {
			p.latch()
			return true
		}
		if value == 0x00 {
			p.ClearPending()
		}
	}
	return false
}

func (p *Port) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return p.sb
	case addr.SC:
		return p.sc
	default:
		return 0xFF
	}
}

// Pending reports whether a latched byte is waiting to be consumed.
func (p *Port) Pending() bool {
	return p.pending
}

// ClearPending consumes the latch, mirroring either harness convention:
// writing 0 back to SC, or clearing the flag directly.
func (p *Port) ClearPending() {
	p.pending = false
}

func (p *Port) Reset() {
	p.sb = 0
	p.sc = 0
	p.pending = false
	p.line = p.line[:0]
}

func (p *Port) latch() {
	p.pending = true

	b := p.sb
	if b == 0 || b == '\n' || b == '\r' {
		if len(p.line) > 0 {
			p.logger.Debug("serial", "line", string(p.line))
			p.line = p.line[:0]
		}
		return
	}
	p.line = append(p.line, b)
}
