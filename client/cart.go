package client

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/utils"
)

// ErrNoActiveCart is returned when checkout or payment is attempted
// before any sync has supplied a cartId.
var ErrNoActiveCart = errors.New("no active cart: cart has not been synced yet")

// Cart is the locally authoritative cart. Every mutation fires an
// asynchronous sync pushing the full snapshot to the backend; a failed
// sync is logged and dropped, never rolled back into local state. The
// first successful sync supplies the canonical cartId, which is reused
// for every later sync and for checkout/payment.
type Cart struct {
	api    *API
	logger *logrus.Logger

	mu     sync.Mutex
	userID string
	cartID string
	items  []models.CartItem
}

// NewCart creates an empty cart with a freshly generated user token.
func NewCart(api *API, logger *logrus.Logger) *Cart {
	return &Cart{
		api:    api,
		logger: logger,
		userID: utils.NewUserToken(),
	}
}

// UserID returns the opaque identity token scoping this cart's orders.
func (ct *Cart) UserID() string {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.userID
}

// CartID returns the backend order id, or "" before the first
// successful sync.
func (ct *Cart) CartID() string {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.cartID
}

// Items returns a copy of the current cart lines.
func (ct *Cart) Items() []models.CartItem {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return append([]models.CartItem(nil), ct.items...)
}

// ItemCount returns the total quantity across all lines.
func (ct *Cart) ItemCount() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	var n int
	for _, item := range ct.items {
		n += item.Quantity
	}
	return n
}

// Quote returns the pricing breakdown for the current items.
func (ct *Cart) Quote() models.PriceQuote {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return models.Quote(ct.items)
}

// AddItem adds one unit of a pizza, merging with an existing line.
func (ct *Cart) AddItem(p models.Pizza) {
	ct.mu.Lock()
	merged := false
	for i := range ct.items {
		if ct.items[i].ItemID == p.ID {
			ct.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		ct.items = append(ct.items, models.CartItem{
			ItemID:   p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: 1,
		})
	}
	snapshot := ct.snapshotLocked()
	ct.mu.Unlock()

	ct.syncAsync(snapshot)
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (ct *Cart) SetQuantity(itemID uint, quantity int) {
	if quantity <= 0 {
		ct.RemoveItem(itemID)
		return
	}

	ct.mu.Lock()
	for i := range ct.items {
		if ct.items[i].ItemID == itemID {
			ct.items[i].Quantity = quantity
			break
		}
	}
	snapshot := ct.snapshotLocked()
	ct.mu.Unlock()

	ct.syncAsync(snapshot)
}

// RemoveItem drops a line from the cart.
func (ct *Cart) RemoveItem(itemID uint) {
	ct.mu.Lock()
	kept := ct.items[:0]
	for _, item := range ct.items {
		if item.ItemID != itemID {
			kept = append(kept, item)
		}
	}
	ct.items = kept
	snapshot := ct.snapshotLocked()
	ct.mu.Unlock()

	ct.syncAsync(snapshot)
}

// Clear empties the cart and forgets the cartId. No sync is fired; the
// next mutation starts a fresh order.
func (ct *Cart) Clear() {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.items = nil
	ct.cartID = ""
}

// SaveCartToBackend performs one blocking sync of the current snapshot.
// It is called at the cart-to-checkout transition so the checkout call
// that follows has a valid cartId.
func (ct *Cart) SaveCartToBackend(ctx context.Context) (*SyncResponse, error) {
	ct.mu.Lock()
	snapshot := ct.snapshotLocked()
	ct.mu.Unlock()

	return ct.sync(ctx, snapshot)
}

// CheckoutOrder sends the delivery details for the synced order.
func (ct *Cart) CheckoutOrder(ctx context.Context, addr models.Address) (*CheckoutResponse, error) {
	ct.mu.Lock()
	cartID, userID := ct.cartID, ct.userID
	ct.mu.Unlock()

	if cartID == "" {
		return nil, ErrNoActiveCart
	}
	return ct.api.Checkout(ctx, cartID, userID, addr)
}

// PayOrder submits the (simulated) payment for the synced order.
func (ct *Cart) PayOrder(ctx context.Context, details interface{}) (*PaymentResponse, error) {
	ct.mu.Lock()
	cartID, userID := ct.cartID, ct.userID
	ct.mu.Unlock()

	if cartID == "" {
		return nil, ErrNoActiveCart
	}
	return ct.api.Pay(ctx, cartID, userID, details)
}

// snapshotLocked builds the sync payload from current state. Caller
// holds ct.mu.
func (ct *Cart) snapshotLocked() SyncRequest {
	items := append([]models.CartItem(nil), ct.items...)
	return SyncRequest{
		UserID: ct.userID,
		Items:  items,
		Total:  models.Quote(items).Total,
		CartID: ct.cartID,
	}
}

// syncAsync fires the snapshot at the backend without blocking the
// caller. Errors are logged and discarded: local state stays the source
// of truth. Responses may arrive out of order; whichever cartId lands
// last wins, which is harmless since the next sync carries the full
// current snapshot anyway.
func (ct *Cart) syncAsync(snapshot SyncRequest) {
	go func() {
		if _, err := ct.sync(context.Background(), snapshot); err != nil {
			ct.logger.Warnf("Error syncing cart to backend: %v", err)
		}
	}()
}

func (ct *Cart) sync(ctx context.Context, snapshot SyncRequest) (*SyncResponse, error) {
	resp, err := ct.api.SyncCart(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	if resp.OrderID != "" {
		ct.mu.Lock()
		ct.cartID = resp.OrderID
		ct.mu.Unlock()
	}
	return resp, nil
}
