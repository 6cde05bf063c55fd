package models

import (
	"encoding/json"
	"time"
)

// Order lifecycle statuses. Transitions only move forward:
// PENDING -> CHECKOUT_COMPLETE -> CONFIRMED.
const (
	StatusPending          = "PENDING"
	StatusCheckoutComplete = "CHECKOUT_COMPLETE"
	StatusConfirmed        = "CONFIRMED"
)

// Order is a cart that has acquired a durable identity and status.
// Items and Address are stored as JSON text columns; the typed views
// are exposed through the accessor methods below.
type Order struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Items     string    `gorm:"type:text" json:"-"`
	Total     float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	Address   string    `gorm:"type:text" json:"-"`
	PaymentID string    `gorm:"type:varchar(64)" json:"paymentId,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

// SetItems serializes the cart snapshot into the items column.
func (o *Order) SetItems(items []CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.Items = string(raw)
	return nil
}

// CartItems deserializes the items column. An order that has never been
// synced with items yields an empty slice.
func (o *Order) CartItems() ([]CartItem, error) {
	if o.Items == "" {
		return nil, nil
	}
	var items []CartItem
	if err := json.Unmarshal([]byte(o.Items), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetAddress serializes the delivery/pickup details into the address column.
func (o *Order) SetAddress(addr Address) error {
	raw, err := json.Marshal(addr)
	if err != nil {
		return err
	}
	o.Address = string(raw)
	return nil
}

// DeliveryAddress deserializes the address column. Orders that have not
// reached checkout have no address.
func (o *Order) DeliveryAddress() (*Address, error) {
	if o.Address == "" {
		return nil, nil
	}
	var addr Address
	if err := json.Unmarshal([]byte(o.Address), &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}
