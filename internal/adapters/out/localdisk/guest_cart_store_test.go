// internal/adapters/out/localdisk/guest_cart_store_test.go
package localdisk

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdom "dreamweave/internal/domain/cart"
)

func TestLoadMissingFileIsEmptyCart(t *testing.T) {
	s := NewGuestCartStore(t.TempDir())

	lines, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewGuestCartStore(t.TempDir())

	in := []cartdom.Line{
		{ProductID: "p1", Name: "Sheet", UnitPrice: 49.99, ImageRef: "img", Size: "Queen", Color: "White", Quantity: 2},
		{ProductID: "p2", Name: "Flannel", UnitPrice: 42, Size: "King", Quantity: 1},
	}
	require.NoError(t, s.Save(ctx, in))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewGuestCartStore(dir)

	require.NoError(t, s.Save(ctx, []cartdom.Line{{ProductID: "p1", Size: "Queen", Quantity: 1}}))

	_, err := os.Stat(filepath.Join(dir, DefaultFileName))
	assert.NoError(t, err)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s := NewGuestCartStore(t.TempDir())

	require.NoError(t, s.Save(ctx, []cartdom.Line{{ProductID: "p1", Size: "Queen", Quantity: 1}}))
	require.NoError(t, s.Save(ctx, []cartdom.Line{{ProductID: "p2", Size: "King", Quantity: 3}}))

	out, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ProductID)
}

func TestClearRemovesFileAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewGuestCartStore(t.TempDir())

	require.NoError(t, s.Save(ctx, []cartdom.Line{{ProductID: "p1", Size: "Queen", Quantity: 1}}))
	require.NoError(t, s.Clear(ctx))

	lines, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, lines)

	// clearing again is a no-op
	require.NoError(t, s.Clear(ctx))
}
