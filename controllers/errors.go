package controllers

import "errors"

// Error texts mirror what the mobile client already displays, so they
// stay user-facing sentences rather than lowercase Go error strings.
var (
	ErrMissingCartFields     = errors.New("Missing required cart fields (userId, items, total).")
	ErrMissingCheckoutFields = errors.New("Missing required checkout fields (orderId, address, userId).")
	ErrMissingPaymentFields  = errors.New("Missing required payment fields (orderId, paymentDetails, userId).")
	ErrOrderNotProcessable   = errors.New("Order not found or already processed.")
	ErrMenuUnavailable       = errors.New("Failed to retrieve menu.")
)
