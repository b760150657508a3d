// Package cart keeps the session-scoped cart state. The backend is the only
// authority: every successful mutation replaces the local item list with the
// list the server returned, with no merging or client-side reconciliation, so
// local state can never drift from backend-enforced rules like stock limits.
package cart

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/vitrine-store/gateway/pkg/models"
)

var (
	// ErrUnauthenticated is returned when a mutation that must fail loudly
	// is attempted without an active session.
	ErrUnauthenticated = errors.New("cart: no active session")
	// ErrAddFailed is returned when the backend rejects an add.
	ErrAddFailed = errors.New("cart: failed to add product")
)

// Backend is the cart slice of the commerce API client.
type Backend interface {
	CartList(ctx context.Context, bearer string) (*models.CartResponse, error)
	CartAdd(ctx context.Context, bearer string, product models.Product) (*models.CartResponse, error)
	CartDelete(ctx context.Context, bearer, productID string) (*models.CartResponse, error)
	CartUpdateQuantity(ctx context.Context, bearer, productID string, quantity int) (*models.CartResponse, error)
	CartClear(ctx context.Context, bearer string) error
}

// Mirror persists the per-user item list between requests. It is a cache of
// the backend's last answer, never an independent source of truth.
type Mirror interface {
	Get(ctx context.Context, userID string) ([]models.CartItem, error)
	Put(ctx context.Context, userID string, items []models.CartItem) error
	Delete(ctx context.Context, userID string) error
}

type Store struct {
	backend Backend
	mirror  Mirror

	mu sync.Mutex // serializes mirror writes per store
}

func NewStore(backend Backend, mirror Mirror) *Store {
	return &Store{backend: backend, mirror: mirror}
}

// Items returns the current local item list without contacting the backend.
// No session means an empty cart.
func (s *Store) Items(ctx context.Context, sess *models.Session) []models.CartItem {
	if sess == nil {
		return nil
	}
	items, err := s.mirror.Get(ctx, sess.User.ID)
	if err != nil {
		log.Printf("Warning: failed to read cart mirror: %v", err)
		return nil
	}
	return items
}

// Load fetches the full cart from the backend and replaces local state with
// its item list. On failure the previous state is kept and the error is only
// logged; callers still get the best-known list.
func (s *Store) Load(ctx context.Context, sess *models.Session) []models.CartItem {
	if sess == nil {
		return nil
	}

	resp, err := s.backend.CartList(ctx, sess.Token)
	if err != nil {
		log.Printf("Warning: failed to load cart: %v", err)
		return s.Items(ctx, sess)
	}

	s.replace(ctx, sess.User.ID, resp.Items)
	return resp.Items
}

// Add sends the product to the backend and adopts the returned list. The
// backend decides the resulting quantity for an already-present line. Unlike
// the other mutations this one fails loudly: without a session it returns
// ErrUnauthenticated, and a backend rejection surfaces as ErrAddFailed.
func (s *Store) Add(ctx context.Context, sess *models.Session, product models.Product) ([]models.CartItem, error) {
	if sess == nil {
		return nil, ErrUnauthenticated
	}

	resp, err := s.backend.CartAdd(ctx, sess.Token, product)
	if err != nil {
		log.Printf("Warning: failed to add product %s to cart: %v", product.ID, err)
		return nil, errors.Join(ErrAddFailed, err)
	}

	s.replace(ctx, sess.User.ID, resp.Items)
	return resp.Items, nil
}

// Remove deletes one line. Without a session, or when the backend call fails,
// it is a silent no-op that returns the unchanged local list.
func (s *Store) Remove(ctx context.Context, sess *models.Session, productID string) []models.CartItem {
	if sess == nil {
		return nil
	}

	resp, err := s.backend.CartDelete(ctx, sess.Token, productID)
	if err != nil {
		log.Printf("Warning: failed to remove product %s from cart: %v", productID, err)
		return s.Items(ctx, sess)
	}

	s.replace(ctx, sess.User.ID, resp.Items)
	return resp.Items
}

// UpdateQuantity sets an absolute quantity for one line. A quantity of zero
// or less removes the line instead; carts never hold zero-quantity items.
func (s *Store) UpdateQuantity(ctx context.Context, sess *models.Session, productID string, quantity int) []models.CartItem {
	if sess == nil {
		return nil
	}

	if quantity <= 0 {
		return s.Remove(ctx, sess, productID)
	}

	resp, err := s.backend.CartUpdateQuantity(ctx, sess.Token, productID, quantity)
	if err != nil {
		log.Printf("Warning: failed to update quantity for product %s: %v", productID, err)
		return s.Items(ctx, sess)
	}

	s.replace(ctx, sess.User.ID, resp.Items)
	return resp.Items
}

// Clear wipes the cart on the backend and, on success, locally.
func (s *Store) Clear(ctx context.Context, sess *models.Session) []models.CartItem {
	if sess == nil {
		return nil
	}

	if err := s.backend.CartClear(ctx, sess.Token); err != nil {
		log.Printf("Warning: failed to clear cart: %v", err)
		return s.Items(ctx, sess)
	}

	s.replace(ctx, sess.User.ID, []models.CartItem{})
	return []models.CartItem{}
}

// Reset drops the local state for a user without touching the backend. Runs
// on logout, where the backend cart must survive for the next login.
func (s *Store) Reset(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.mirror.Delete(ctx, userID); err != nil {
		log.Printf("Warning: failed to reset cart mirror: %v", err)
	}
}

func (s *Store) replace(ctx context.Context, userID string, items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if items == nil {
		items = []models.CartItem{}
	}
	if err := s.mirror.Put(ctx, userID, items); err != nil {
		log.Printf("Warning: failed to persist cart mirror: %v", err)
	}
}

// Total computes the cart total: price times (1 - discount) times quantity,
// summed over all lines. Discount applies only when the line is flagged.
// Plain float64 arithmetic; currency formatting belongs to the caller.
func Total(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		price, err := strconv.ParseFloat(item.Price, 64)
		if err != nil {
			log.Printf("Warning: unparsable price %q for product %s", item.Price, item.ID)
			continue
		}
		discount := 0.0
		if item.HasDiscount {
			if d, err := strconv.ParseFloat(item.DiscountValue, 64); err == nil {
				discount = d
			}
		}
		total += price * (1 - discount) * float64(item.Quantity)
	}
	return total
}
