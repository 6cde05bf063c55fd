package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteEmptyCart(t *testing.T) {
	q := Quote(nil)
	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, 0.0, q.Tax)
	assert.Equal(t, DeliveryFee, q.DeliveryFee)
	assert.InDelta(t, DeliveryFee, q.Total, 1e-9)
}

func TestQuoteSingleItem(t *testing.T) {
	items := []CartItem{
		{ItemID: 1, Name: "Classic Pepperoni", Price: 12.99, Quantity: 2},
	}
	q := Quote(items)
	assert.InDelta(t, 25.98, q.Subtotal, 1e-9)
	assert.InDelta(t, 25.98*0.08, q.Tax, 1e-9)
	assert.InDelta(t, 25.98+25.98*0.08+3.99, q.Total, 1e-9)
}

// Total must always equal subtotal + 8% tax + the flat delivery fee,
// whatever the item mix.
func TestQuoteTotalFormula(t *testing.T) {
	carts := [][]CartItem{
		{{ItemID: 1, Price: 15.99, Quantity: 1}},
		{{ItemID: 1, Price: 15.99, Quantity: 3}, {ItemID: 2, Price: 12.50, Quantity: 1}},
		{{ItemID: 2, Price: 12.50, Quantity: 2}, {ItemID: 3, Price: 17.99, Quantity: 2}, {ItemID: 4, Price: 16.99, Quantity: 5}},
	}
	for _, items := range carts {
		var subtotal float64
		for _, item := range items {
			subtotal += item.Price * float64(item.Quantity)
		}
		q := Quote(items)
		assert.InDelta(t, subtotal, q.Subtotal, 1e-9)
		assert.InDelta(t, subtotal+subtotal*TaxRate+DeliveryFee, q.Total, 1e-9)
	}
}

func TestOrderItemsRoundTrip(t *testing.T) {
	order := Order{}
	items := []CartItem{
		{ItemID: 1, Name: "Classic Pepperoni", Price: 15.99, Quantity: 2},
		{ItemID: 3, Name: "Gourmet Veggie", Price: 17.99, Quantity: 1},
	}
	assert.NoError(t, order.SetItems(items))

	got, err := order.CartItems()
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestOrderAddressEmpty(t *testing.T) {
	order := Order{}
	addr, err := order.DeliveryAddress()
	assert.NoError(t, err)
	assert.Nil(t, addr)
}

func TestOrderAddressRoundTrip(t *testing.T) {
	order := Order{}
	assert.NoError(t, order.SetAddress(Address{
		Type:   AddressDelivery,
		Street: "12 Elm Street",
		Timing: TimingASAP,
	}))

	addr, err := order.DeliveryAddress()
	assert.NoError(t, err)
	assert.Equal(t, AddressDelivery, addr.Type)
	assert.Equal(t, "12 Elm Street", addr.Street)
	assert.Equal(t, TimingASAP, addr.Timing)
}
