package models

// Pricing constants shared by the backend seed data and the cart client.
// The client computes totals with these and the server trusts them as
// sent, so both sides must agree exactly.
const (
	TaxRate     = 0.08
	DeliveryFee = 3.99
)

// CartItem is one line of a cart snapshot.
type CartItem struct {
	ItemID   uint    `json:"id"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Address delivery type and timing choices.
const (
	AddressDelivery = "delivery"
	AddressPickup   = "pickup"

	TimingASAP      = "asap"
	TimingScheduled = "scheduled"
)

// Address holds the checkout details: either a street address for
// delivery or a location name for pickup, plus the timing choice.
type Address struct {
	Type        string `json:"type"`
	Street      string `json:"street,omitempty"`
	Location    string `json:"location,omitempty"`
	Timing      string `json:"timing"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
}

// PriceQuote is the full pricing breakdown for a cart snapshot.
type PriceQuote struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Quote computes the pricing breakdown for a list of items:
// subtotal plus 8% tax plus a flat delivery fee.
func Quote(items []CartItem) PriceQuote {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return PriceQuote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: DeliveryFee,
		Total:       subtotal + tax + DeliveryFee,
	}
}
