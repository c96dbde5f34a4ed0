package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestParallelSystemsShareNoState drives N independent Systems concurrently,
// each on its own goroutine, to demonstrate that System's value semantics
// (no shared pointers beyond each instance's own embedded MMU) make that
// safe without any locking.
func TestParallelSystemsShareNoState(t *testing.T) {
	const n = 16

	results := make([]string, n)
	g, _ := errgroup.WithContext(context.Background())

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			sys := New()
			rom := minimalROM(string(rune('A' + i)))
			if err := sys.LoadROM(rom); err != nil {
				return err
			}
			sys.SkipBootROM()

			for j := 0; j < 1000; j++ {
				sys.Step()
			}

			results[i] = sys.CartridgeTitle()
			return nil
		})
	}

	require.NoError(t, g.Wait())

	for i := 0; i < n; i++ {
		assert.Equal(t, string(rune('A'+i)), results[i])
	}
}
