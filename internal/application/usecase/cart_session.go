// internal/application/usecase/cart_session.go
package usecase

import (
	"context"
	"log"
	"strings"
	"sync"

	cartdom "dreamweave/internal/domain/cart"
	"dreamweave/internal/domain/common"
	productdom "dreamweave/internal/domain/product"
)

// SessionState is the lifecycle state of a CartSession.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateGuestLoaded
	StateReconciling
	StateRemoteLoaded
	StateGuestActive
)

func (s SessionState) String() string {
	switch s {
	case StateGuestLoaded:
		return "guest_loaded"
	case StateReconciling:
		return "reconciling"
	case StateRemoteLoaded:
		return "remote_loaded"
	case StateGuestActive:
		return "guest_active"
	default:
		return "uninitialized"
	}
}

// CartSession owns one session's cart snapshot and the guest/remote
// reconciliation around auth transitions.
//
// Persistence target follows the session identity: guest store while
// anonymous, the remote cart once authenticated. The `loaded` flag is the
// load-complete gate: while a load or reconciliation is in flight, mutation
// persistence is skipped so a stale write cannot race the read. The browser
// original relies on a single-threaded event loop for that; here the mutex
// serializes operations and `version` lets a slow reconciliation detect that
// a newer login/logout superseded it and discard its result.
//
// Remote I/O failures are logged and degraded to "proceed with what we have";
// the gate reopens even on error so the session stays usable offline.
type CartSession struct {
	mu      sync.Mutex
	state   SessionState
	userID  string // empty while anonymous
	loaded  bool
	version uint64
	snap    cartdom.Snapshot

	guest   cartdom.GuestStore
	remote  cartdom.RemoteRepository
	catalog productdom.Catalog
}

// NewCartSession builds a session in the Uninitialized state.
// Call Start before use.
func NewCartSession(guest cartdom.GuestStore, remote cartdom.RemoteRepository, catalog productdom.Catalog) *CartSession {
	return &CartSession{
		state:   StateUninitialized,
		guest:   guest,
		remote:  remote,
		catalog: catalog,
	}
}

// Start loads the guest cart from local storage (empty if none) and opens
// the persistence gate. Uninitialized -> GuestLoaded.
func (s *CartSession) Start(ctx context.Context) error {
	lines, err := s.guest.Load(ctx)
	if err != nil {
		log.Printf("[cart_session] guest cart load failed: %v (starting empty)", err)
		lines = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = cartdom.Snapshot{Lines: cartdom.NormalizeLines(lines)}
	s.state = StateGuestLoaded
	s.loaded = true
	return nil
}

// Login runs the one-time reconciliation for userID:
//
//  1. read the remote cart and the pre-login guest cart
//  2. remote empty + guest non-empty -> adopt guest, write it through
//  3. remote non-empty               -> adopt remote, guest items discarded
//  4. freshness-refresh the adopted snapshot before use
//  5. clear guest storage (no guest-cart leak into the next anonymous session)
//  6. reopen the gate
//
// Re-running for the same user is idempotent: remote already holds the
// resolved state, so step 3 re-adopts it.
func (s *CartSession) Login(ctx context.Context, userID string) error {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return common.Ef(common.KindValidation, "cart_session.Login", "empty userID")
	}

	s.mu.Lock()
	s.version++
	v := s.version
	s.loaded = false // gate closed: no persistence writes until reconciled
	s.state = StateReconciling
	s.userID = uid
	s.mu.Unlock()

	remoteLines, rerr := s.remote.Get(ctx, uid)
	guestLines, gerr := s.guest.Load(ctx)
	if gerr != nil {
		log.Printf("[cart_session] guest cart read failed during login: %v (treating as empty)", gerr)
		guestLines = nil
	}

	var adopted []cartdom.Line
	if rerr != nil {
		// Availability over strictness: keep the guest view, skip the
		// write-through and the guest clear (remote state is unknown).
		log.Printf("[cart_session] remote cart read failed for %s: %v (proceeding with guest cart)", uid, rerr)
		adopted = RefreshLines(ctx, cartdom.NormalizeLines(guestLines), s.catalog)
	} else {
		resolved, adoptGuest := resolveCarts(remoteLines, guestLines)
		adopted = RefreshLines(ctx, resolved, s.catalog)
		if adoptGuest {
			if err := s.remote.Save(ctx, uid, adopted); err != nil {
				log.Printf("[cart_session] guest cart write-through failed for %s: %v", uid, err)
			}
		}
		if err := s.guest.Clear(ctx); err != nil {
			log.Printf("[cart_session] guest cart clear failed: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != v {
		// A later login/logout won the race; this result is stale.
		log.Printf("[cart_session] discarding stale reconciliation for %s", uid)
		return nil
	}
	s.snap = cartdom.Snapshot{Lines: adopted}
	s.state = StateRemoteLoaded
	s.loaded = true
	return nil
}

// Logout switches persistence back to the guest store and reloads the
// snapshot from it (independent of whatever the remote cart holds).
func (s *CartSession) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.version++
	v := s.version
	s.userID = ""
	s.loaded = false
	s.mu.Unlock()

	lines, err := s.guest.Load(ctx)
	if err != nil {
		log.Printf("[cart_session] guest cart reload failed on logout: %v (starting empty)", err)
		lines = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.version != v {
		return nil
	}
	s.snap = cartdom.Snapshot{Lines: cartdom.NormalizeLines(lines)}
	s.state = StateGuestActive
	s.loaded = true
	return nil
}

// AddProduct adds a catalog product to the cart.
// size defaults to cart.DefaultSize, color to the product's first color.
func (s *CartSession) AddProduct(ctx context.Context, p *productdom.Product, quantity int, size, color string) error {
	if p == nil {
		return common.Ef(common.KindValidation, "cart_session.AddProduct", "nil product")
	}
	if quantity < 1 {
		quantity = 1
	}
	if strings.TrimSpace(size) == "" {
		size = cartdom.DefaultSize
	}
	if strings.TrimSpace(color) == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}
	return s.Add(ctx, cartdom.Line{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.Image,
		Size:      size,
		Color:     color,
		Quantity:  quantity,
	})
}

// Add merges a line into the snapshot and persists to the active target.
func (s *CartSession) Add(ctx context.Context, item cartdom.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.snap.Add(item); err != nil {
		return common.E(common.KindValidation, "cart_session.Add", err)
	}
	s.persistLocked(ctx)
	return nil
}

// Remove drops all lines matching (productID, size). Absent key is a no-op.
func (s *CartSession) Remove(ctx context.Context, productID, size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Remove(productID, size)
	s.persistLocked(ctx)
}

// SetQuantity floors quantity to 1; it never removes the line.
func (s *CartSession) SetQuantity(ctx context.Context, productID, size string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SetQuantity(productID, size, quantity)
	s.persistLocked(ctx)
}

// Clear empties the cart and persists to whichever target is active.
func (s *CartSession) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Clear()
	s.persistLocked(ctx)
}

// Lines returns a copy of the current snapshot lines.
func (s *CartSession) Lines() []cartdom.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.CloneLines()
}

// Total is the snapshot total (unitPrice x quantity summed).
func (s *CartSession) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Total()
}

// Count is the badge count (quantities summed).
func (s *CartSession) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Count()
}

// State returns the current lifecycle state.
func (s *CartSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// persistLocked writes the snapshot to the active target.
// Caller holds s.mu. While the gate is closed (reconciliation in flight) the
// write is skipped; the reconciled result will supersede this state anyway.
// Write failures are logged and swallowed (best-effort, no retry).
func (s *CartSession) persistLocked(ctx context.Context) {
	if !s.loaded {
		return
	}
	lines := s.snap.CloneLines()
	if s.userID != "" {
		if err := s.remote.Save(ctx, s.userID, lines); err != nil {
			log.Printf("[cart_session] remote cart save failed for %s: %v", s.userID, err)
		}
		return
	}
	if err := s.guest.Save(ctx, lines); err != nil {
		log.Printf("[cart_session] guest cart save failed: %v", err)
	}
}
