package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-store/gateway/pkg/models"
)

// fakeBackend keeps a server-side cart the way the real backend does: one
// line per product id, add increments, every call returns the full list.
type fakeBackend struct {
	items []models.CartItem

	failList   bool
	failAdd    bool
	failDelete bool
	failUpdate bool
	failClear  bool
}

var errBackendDown = errors.New("backend unavailable")

func (f *fakeBackend) list() *models.CartResponse {
	out := make([]models.CartItem, len(f.items))
	copy(out, f.items)
	return &models.CartResponse{Items: out}
}

func (f *fakeBackend) CartList(context.Context, string) (*models.CartResponse, error) {
	if f.failList {
		return nil, errBackendDown
	}
	return f.list(), nil
}

func (f *fakeBackend) CartAdd(_ context.Context, _ string, product models.Product) (*models.CartResponse, error) {
	if f.failAdd {
		return nil, errBackendDown
	}
	for i := range f.items {
		if f.items[i].ID == product.ID {
			f.items[i].Quantity++
			return f.list(), nil
		}
	}
	f.items = append(f.items, models.CartItem{Product: product, Quantity: 1})
	return f.list(), nil
}

func (f *fakeBackend) CartDelete(_ context.Context, _ string, productID string) (*models.CartResponse, error) {
	if f.failDelete {
		return nil, errBackendDown
	}
	kept := f.items[:0]
	for _, item := range f.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return f.list(), nil
}

func (f *fakeBackend) CartUpdateQuantity(_ context.Context, _ string, productID string, quantity int) (*models.CartResponse, error) {
	if f.failUpdate {
		return nil, errBackendDown
	}
	for i := range f.items {
		if f.items[i].ID == productID {
			f.items[i].Quantity = quantity
		}
	}
	return f.list(), nil
}

func (f *fakeBackend) CartClear(context.Context, string) error {
	if f.failClear {
		return errBackendDown
	}
	f.items = nil
	return nil
}

func product(id, price string) models.Product {
	return models.Product{ID: id, Name: "product " + id, Price: price}
}

func discounted(id, price, discount string) models.Product {
	p := product(id, price)
	p.HasDiscount = true
	p.DiscountValue = discount
	return p
}

func testSession() *models.Session {
	return &models.Session{
		User:  models.User{ID: "u-1", Name: "Ana", Email: "ana@example.com"},
		Token: "tok",
	}
}

func newTestStore(backend Backend) *Store {
	return NewStore(backend, NewMemoryMirror())
}

func TestAddWithoutSession(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)

	_, err := store.Add(context.Background(), nil, product("p-1", "10.00"))
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, store.Items(context.Background(), testSession()), "cart must stay empty")
}

func TestAddThenLoadSingleLine(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)
	items, err2 := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err2)

	require.Len(t, items, 1, "one line per product id")
	assert.Equal(t, 2, items[0].Quantity)

	loaded := store.Load(ctx, sess)
	require.Len(t, loaded, 1)
	assert.Equal(t, "p-1", loaded[0].ID)
}

func TestAddBackendRejection(t *testing.T) {
	fb := &fakeBackend{failAdd: true}
	store := newTestStore(fb)
	sess := testSession()

	_, err := store.Add(context.Background(), sess, product("p-1", "10.00"))
	assert.ErrorIs(t, err, ErrAddFailed)
	assert.Empty(t, store.Items(context.Background(), sess))
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)
	_, err = store.Add(ctx, sess, product("p-2", "5.00"))
	require.NoError(t, err)

	items := store.UpdateQuantity(ctx, sess, "p-1", 0)
	require.Len(t, items, 1)
	assert.Equal(t, "p-2", items[0].ID)

	// Idempotent when the line is already gone.
	items = store.UpdateQuantity(ctx, sess, "p-1", -3)
	require.Len(t, items, 1)
	assert.Equal(t, "p-2", items[0].ID)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)

	items := store.UpdateQuantity(ctx, sess, "p-1", 7)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestLoadFailureKeepsState(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)

	fb.failList = true
	items := store.Load(ctx, sess)
	require.Len(t, items, 1, "failed load must not wipe local state")
	assert.Equal(t, "p-1", items[0].ID)
}

func TestRemoveFailureIsSilent(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)

	fb.failDelete = true
	items := store.Remove(ctx, sess, "p-1")
	require.Len(t, items, 1, "failed remove keeps the line")
}

func TestMutationsWithoutSessionAreNoOps(t *testing.T) {
	fb := &fakeBackend{items: []models.CartItem{{Product: product("p-1", "10.00"), Quantity: 1}}}
	store := newTestStore(fb)
	ctx := context.Background()

	assert.Nil(t, store.Remove(ctx, nil, "p-1"))
	assert.Nil(t, store.UpdateQuantity(ctx, nil, "p-1", 3))
	assert.Nil(t, store.Clear(ctx, nil))
	require.Len(t, fb.items, 1, "backend must not be touched without a session")
}

func TestClearEmptiesCart(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)

	items := store.Clear(ctx, sess)
	assert.Empty(t, items)
	assert.Empty(t, store.Items(ctx, sess))
}

func TestResetDropsLocalStateOnly(t *testing.T) {
	fb := &fakeBackend{}
	store := newTestStore(fb)
	sess := testSession()
	ctx := context.Background()

	_, err := store.Add(ctx, sess, product("p-1", "10.00"))
	require.NoError(t, err)

	store.Reset(ctx, sess.User.ID)
	assert.Empty(t, store.Items(ctx, sess))
	require.Len(t, fb.items, 1, "logout must not clear the backend cart")
}

func TestTotal(t *testing.T) {
	items := []models.CartItem{
		{Product: product("p-1", "100.00"), Quantity: 2},
		{Product: discounted("p-2", "50.00", "0.2"), Quantity: 3},
	}

	// 100*2 + 50*0.8*3
	assert.InDelta(t, 320.0, Total(items), 1e-9)

	// Order-independent.
	reversed := []models.CartItem{items[1], items[0]}
	assert.InDelta(t, Total(items), Total(reversed), 1e-9)
}

func TestTotalIgnoresDiscountWhenNotFlagged(t *testing.T) {
	p := product("p-1", "80.00")
	p.DiscountValue = "0.5" // present but not flagged
	items := []models.CartItem{{Product: p, Quantity: 1}}

	assert.InDelta(t, 80.0, Total(items), 1e-9)
}

func TestTotalEmptyCart(t *testing.T) {
	assert.Zero(t, Total(nil))
}
