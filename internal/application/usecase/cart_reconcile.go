// internal/application/usecase/cart_reconcile.go
package usecase

import (
	cartdom "dreamweave/internal/domain/cart"
)

// resolveCarts decides which snapshot wins when a guest logs in.
//
// Policy (one-shot, no interactive merge):
//   - remote empty, guest has items  -> adopt guest (write it through to remote)
//   - remote has items               -> adopt remote; guest items are discarded
//   - both empty                     -> empty cart
//
// "Remote wins if non-empty" means a returning guest silently loses local
// items when the account already had a cart. That is the inherited behavior,
// kept as-is; see DESIGN.md for the open question around it.
func resolveCarts(remote, guest []cartdom.Line) (adopted []cartdom.Line, adoptGuest bool) {
	remote = cartdom.NormalizeLines(remote)
	guest = cartdom.NormalizeLines(guest)

	if len(remote) == 0 && len(guest) > 0 {
		return guest, true
	}
	return remote, false
}
