package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redisclient "github.com/redis/go-redis/v9"

	"github.com/vitrine-store/gateway/pkg/models"
)

// cartTTL matches the session cookie window: a mirror that outlives its
// session is useless, one that expires earlier forces a reload.
const cartTTL = 7 * 24 * time.Hour

// CartMirror persists per-user cart state as a JSON value under cart:<user>.
// It implements cart.Mirror.
type CartMirror struct {
	client *redisclient.Client
}

func NewCartMirror(client *redisclient.Client) *CartMirror {
	return &CartMirror{client: client}
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// Get returns the stored item list, or an empty one when no mirror exists.
func (m *CartMirror) Get(ctx context.Context, userID string) ([]models.CartItem, error) {
	raw, err := m.client.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to read cart mirror: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart mirror: %w", err)
	}
	return items, nil
}

// Put replaces the stored list wholesale and refreshes the TTL.
func (m *CartMirror) Put(ctx context.Context, userID string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart mirror: %w", err)
	}

	if err := m.client.Set(ctx, cartKey(userID), raw, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to write cart mirror: %w", err)
	}
	return nil
}

// Delete drops the mirror for a user.
func (m *CartMirror) Delete(ctx context.Context, userID string) error {
	if err := m.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart mirror: %w", err)
	}
	return nil
}
