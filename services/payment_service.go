package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/utils"
)

// ErrNotPayable is returned when no order matches the given id and owner
// in the CHECKOUT_COMPLETE status. The three causes (unknown order,
// wrong owner, wrong status) are deliberately indistinguishable.
var ErrNotPayable = errors.New("Order not found or not ready for payment.")

// PaymentService finalizes orders. It stands in for an external payment
// gateway: the card details are accepted and discarded, the charge
// always succeeds, and only the reference token is real.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// Charge issues a payment reference and confirms the order in a single
// guarded update. The status filter keeps the transition monotonic: an
// order that is not exactly CHECKOUT_COMPLETE is never touched.
func (s *PaymentService) Charge(orderID, userID string, details json.RawMessage) (string, error) {
	// A real gateway call would go here; details are intentionally unused.
	_ = details

	reference := utils.NewPaymentReference()

	result := s.db.Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status = ?", orderID, userID, models.StatusCheckoutComplete).
		Updates(map[string]interface{}{
			"payment_id": reference,
			"status":     models.StatusConfirmed,
		})
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrNotPayable
	}

	utils.InfoLogger.Printf("Payment confirmed for order %s (ref %s)", orderID, reference)
	return reference, nil
}
