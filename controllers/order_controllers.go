package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/services"
	"github.com/slicely/pizza-order-backend/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewOrderController(db *gorm.DB, payments *services.PaymentService) *OrderController {
	return &OrderController{DB: db, Payments: payments}
}

// UpsertCart -> create or update a PENDING cart with a full snapshot.
// The client recomputes the total on every mutation and the value is
// trusted as sent; there is no server-side recomputation.
func (oc *OrderController) UpsertCart(c *gin.Context) {
	type reqBody struct {
		UserID string            `json:"userId"`
		Items  []models.CartItem `json:"items"`
		Total  *float64          `json:"total"`
		CartID string            `json:"cartId"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.UserID == "" || body.Items == nil || body.Total == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingCartFields)
		return
	}

	itemsJSON, err := json.Marshal(body.Items)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	now := time.Now()

	if body.CartID != "" {
		// Guarded update: id + owner + PENDING. A CONFIRMED or
		// checked-out order is never mutated; a stale cartId falls
		// through to a fresh insert instead.
		result := oc.DB.Model(&models.Order{}).
			Where("id = ? AND user_id = ? AND status = ?", body.CartID, body.UserID, models.StatusPending).
			Updates(map[string]interface{}{
				"items":      string(itemsJSON),
				"total":      *body.Total,
				"created_at": now,
			})
		if result.Error != nil {
			utils.ErrorLogger.Printf("Cart update error: %v", result.Error)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to create/update cart."))
			return
		}
		if result.RowsAffected > 0 {
			utils.RespondOK(c, http.StatusOK, "Cart updated successfully.", gin.H{
				"orderId": body.CartID,
				"status":  models.StatusPending,
				"total":   *body.Total,
			})
			return
		}
	}

	order := models.Order{
		ID:        utils.NewOrderID(),
		UserID:    body.UserID,
		Status:    models.StatusPending,
		Items:     string(itemsJSON),
		Total:     *body.Total,
		CreatedAt: now,
	}
	if err := oc.DB.Create(&order).Error; err != nil {
		utils.ErrorLogger.Printf("Cart insert error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to create new cart."))
		return
	}

	utils.RespondOK(c, http.StatusOK, "New cart created.", gin.H{
		"orderId": order.ID,
		"status":  order.Status,
		"total":   order.Total,
	})
}

// Checkout -> attach delivery details and advance PENDING to
// CHECKOUT_COMPLETE. Zero affected rows means not found, wrong owner,
// or already past PENDING; the caller cannot tell which.
func (oc *OrderController) Checkout(c *gin.Context) {
	type reqBody struct {
		OrderID string          `json:"orderId"`
		UserID  string          `json:"userId"`
		Address *models.Address `json:"address"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.OrderID == "" || body.UserID == "" || body.Address == nil {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingCheckoutFields)
		return
	}

	addressJSON, err := json.Marshal(body.Address)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result := oc.DB.Model(&models.Order{}).
		Where("id = ? AND user_id = ? AND status = ?", body.OrderID, body.UserID, models.StatusPending).
		Updates(map[string]interface{}{
			"address": string(addressJSON),
			"status":  models.StatusCheckoutComplete,
		})
	if result.Error != nil {
		utils.ErrorLogger.Printf("Checkout error for order %s: %v", body.OrderID, result.Error)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to update order status to checkout."))
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotProcessable)
		return
	}

	utils.RespondOK(c, http.StatusOK, "Checkout successful. Ready for payment.", gin.H{
		"orderId": body.OrderID,
		"status":  models.StatusCheckoutComplete,
	})
}

// Pay -> finalize the order through the simulated payment gateway.
func (oc *OrderController) Pay(c *gin.Context) {
	type reqBody struct {
		OrderID        string          `json:"orderId"`
		UserID         string          `json:"userId"`
		PaymentDetails json.RawMessage `json:"paymentDetails"`
	}

	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.OrderID == "" || body.UserID == "" || len(body.PaymentDetails) == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrMissingPaymentFields)
		return
	}

	reference, err := oc.Payments.Charge(body.OrderID, body.UserID, body.PaymentDetails)
	if err != nil {
		if errors.Is(err, services.ErrNotPayable) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.ErrorLogger.Printf("Payment error for order %s: %v", body.OrderID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Failed to confirm payment and update order status."))
		return
	}

	utils.RespondOK(c, http.StatusOK, "Order successfully placed and paid!", gin.H{
		"orderId":          body.OrderID,
		"status":           models.StatusConfirmed,
		"paymentReference": reference,
	})
}
