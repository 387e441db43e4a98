// internal/application/usecase/cart_freshness.go
package usecase

import (
	"context"
	"errors"
	"log"

	cartdom "dreamweave/internal/domain/cart"
	productdom "dreamweave/internal/domain/product"
)

// RefreshLines replaces each line's cached name / unitPrice / imageRef with
// the live catalog values, looked up by product id. Stored cart entries go
// stale (price changes, renames, new photos), so this runs before a snapshot
// is displayed or adopted.
//
// A product that no longer exists leaves its line unchanged: a user's cart
// line is never silently deleted because the catalog dropped the product.
// Lookup errors degrade the same way (stale but present).
func RefreshLines(ctx context.Context, lines []cartdom.Line, catalog productdom.Catalog) []cartdom.Line {
	if len(lines) == 0 || catalog == nil {
		return lines
	}

	out := make([]cartdom.Line, len(lines))
	copy(out, lines)

	for i := range out {
		p, err := catalog.Lookup(ctx, out[i].ProductID)
		if err != nil {
			if !errors.Is(err, productdom.ErrNotFound) {
				log.Printf("[cart_freshness] lookup %s failed: %v (keeping cached fields)", out[i].ProductID, err)
			}
			continue
		}
		if p == nil {
			continue
		}
		out[i].Name = p.Name
		out[i].UnitPrice = p.Price
		out[i].ImageRef = p.Image
	}
	return out
}
