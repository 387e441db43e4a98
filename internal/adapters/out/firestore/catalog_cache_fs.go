// internal/adapters/out/firestore/catalog_cache_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore"

	productdom "dreamweave/internal/domain/product"
)

// CatalogCacheFS implements product.Catalog on top of a Firestore snapshot
// listener: the products collection is a restartable sequence of snapshots,
// and the lookup table is re-derived on each emission.
//
// Until the first snapshot arrives (and on cache misses afterwards) Lookup
// falls back to a direct document read, so freshness refreshing works even
// when the listener is down.
type CatalogCacheFS struct {
	Client *firestore.Client

	mu    sync.RWMutex
	table map[string]productdom.Product
	ready bool
}

func NewCatalogCacheFS(client *firestore.Client) *CatalogCacheFS {
	return &CatalogCacheFS{Client: client}
}

// Run consumes the snapshot stream until ctx is cancelled, restarting the
// listener with a short backoff after stream errors. Intended to run in its
// own goroutine; teardown is ctx cancellation.
func (c *CatalogCacheFS) Run(ctx context.Context) {
	if c == nil || c.Client == nil {
		return
	}
	for {
		if err := c.listen(ctx); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Printf("[catalog_cache] listener stopped")
				return
			}
			log.Printf("[catalog_cache] listener error: %v (restarting)", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (c *CatalogCacheFS) listen(ctx context.Context) error {
	it := c.Client.Collection("products").Snapshots(ctx)
	defer it.Stop()

	for {
		qsnap, err := it.Next()
		if err != nil {
			return err
		}

		table := map[string]productdom.Product{}
		docs, err := qsnap.Documents.GetAll()
		if err != nil {
			return err
		}
		for _, d := range docs {
			p := productFromData(d.Data())
			p.ID = d.Ref.ID
			table[p.ID] = p
		}

		c.mu.Lock()
		c.table = table
		c.ready = true
		c.mu.Unlock()
	}
}

// Lookup serves from the cached table; a miss (or a not-yet-ready cache)
// falls back to a direct read and reports product.ErrNotFound for gone ids.
func (c *CatalogCacheFS) Lookup(ctx context.Context, productID string) (*productdom.Product, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return nil, productdom.ErrNotFound
	}

	c.mu.RLock()
	p, ok := c.table[pid]
	ready := c.ready
	c.mu.RUnlock()
	if ok {
		cp := p
		return &cp, nil
	}
	if ready {
		// The listener has a current view and the id is not in it.
		return nil, productdom.ErrNotFound
	}

	snap, err := c.Client.Collection("products").Doc(pid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, productdom.ErrNotFound
		}
		return nil, wrapIOErr("catalog_cache.Lookup", err)
	}
	out := productFromData(snap.Data())
	out.ID = pid
	return &out, nil
}
