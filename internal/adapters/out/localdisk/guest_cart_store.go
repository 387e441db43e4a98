// internal/adapters/out/localdisk/guest_cart_store.go
package localdisk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cartdom "dreamweave/internal/domain/cart"
)

// DefaultFileName mirrors the browser local-storage key the guest cart used.
const DefaultFileName = "bedsheet-cart.json"

// GuestCartStore implements cart.GuestStore as one JSON file on local disk:
// the file holds the encoded line array, nothing else. Used only while the
// session is anonymous.
type GuestCartStore struct {
	Path string
}

// NewGuestCartStore stores the guest cart under dir (created on first Save).
func NewGuestCartStore(dir string) *GuestCartStore {
	d := strings.TrimSpace(dir)
	if d == "" {
		d = "."
	}
	return &GuestCartStore{Path: filepath.Join(d, DefaultFileName)}
}

// Load returns (nil, nil) when no guest cart was ever saved.
func (s *GuestCartStore) Load(_ context.Context) ([]cartdom.Line, error) {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return nil, errors.New("guest_cart_store: path is empty")
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("guest_cart_store: read: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var lines []cartdom.Line
	if err := json.Unmarshal(data, &lines); err != nil {
		// Callers log and fall back to an empty cart; the next Save
		// overwrites the corrupt file.
		return nil, fmt.Errorf("guest_cart_store: decode: %w", err)
	}
	return lines, nil
}

// Save overwrites the file atomically (temp file + rename).
func (s *GuestCartStore) Save(_ context.Context, lines []cartdom.Line) error {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return errors.New("guest_cart_store: path is empty")
	}

	if lines == nil {
		lines = []cartdom.Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("guest_cart_store: encode: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("guest_cart_store: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".guest-cart-*")
	if err != nil {
		return fmt.Errorf("guest_cart_store: temp: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("guest_cart_store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("guest_cart_store: close: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("guest_cart_store: rename: %w", err)
	}
	return nil
}

// Clear removes the file; clearing an absent cart is a no-op.
func (s *GuestCartStore) Clear(_ context.Context) error {
	if s == nil || strings.TrimSpace(s.Path) == "" {
		return errors.New("guest_cart_store: path is empty")
	}
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("guest_cart_store: remove: %w", err)
	}
	return nil
}
