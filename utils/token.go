package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewOrderID returns a fresh opaque order identifier.
func NewOrderID() string {
	return uuid.NewString()
}

// NewUserToken returns a locally generated identity token. There is no
// authentication; the token only scopes a user's own orders.
func NewUserToken() string {
	return fmt.Sprintf("user_%s", uuid.NewString())
}

// NewPaymentReference returns a simulated payment gateway reference.
func NewPaymentReference() string {
	return fmt.Sprintf("PAY-%s", uuid.NewString())
}
