package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/slicely/pizza-order-backend/database"
	"github.com/slicely/pizza-order-backend/models"
	"github.com/slicely/pizza-order-backend/router"
	"github.com/slicely/pizza-order-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// setupTestDB -> in-memory SQLite + migrate + seed
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedPizzas(db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	return db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

// TestEndToEndIntegration walks the whole lifecycle:
// 1. Fetch menu
// 2. Sync cart (PENDING)
// 3. Update the same cart (idempotent)
// 4. Checkout (CHECKOUT_COMPLETE), repeat -> 404
// 5. Pay (CONFIRMED, PAY- reference), repeat -> 404
func TestEndToEndIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB()
	r := router.SetupRouter(db)

	// 1. Menu
	code, resp := doJSON(t, r, "GET", "/api/pizzas", nil)
	assert.Equal(t, http.StatusOK, code)
	menu := resp["data"].([]interface{})
	assert.Len(t, menu, 4)

	first := menu[0].(map[string]interface{})
	price := first["price"].(float64)

	// 2. Cart: two of the first pizza, client-priced
	items := []map[string]interface{}{
		{"id": first["id"], "name": first["name"], "price": price, "quantity": 2},
	}
	subtotal := price * 2
	total := subtotal + subtotal*models.TaxRate + models.DeliveryFee

	code, resp = doJSON(t, r, "POST", "/api/cart", map[string]interface{}{
		"userId": "user_it", "items": items, "total": total,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "PENDING", resp["status"])
	orderID := resp["orderId"].(string)
	assert.NotEmpty(t, orderID)

	// 3. Same cartId again -> same row updated
	code, resp = doJSON(t, r, "POST", "/api/cart", map[string]interface{}{
		"userId": "user_it", "items": items, "total": total, "cartId": orderID,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Cart updated successfully.", resp["message"])
	assert.Equal(t, orderID, resp["orderId"])

	// 4. Checkout
	checkout := map[string]interface{}{
		"orderId": orderID,
		"userId":  "user_it",
		"address": map[string]interface{}{"type": "delivery", "street": "12 Elm Street", "timing": "asap"},
	}
	code, resp = doJSON(t, r, "POST", "/api/checkout", checkout)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CHECKOUT_COMPLETE", resp["status"])

	code, _ = doJSON(t, r, "POST", "/api/checkout", checkout)
	assert.Equal(t, http.StatusNotFound, code)

	// 5. Payment
	payment := map[string]interface{}{
		"orderId":        orderID,
		"userId":         "user_it",
		"paymentDetails": map[string]interface{}{"method": "card", "last4": "4242"},
	}
	code, resp = doJSON(t, r, "POST", "/api/payment", payment)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "CONFIRMED", resp["status"])
	assert.True(t, strings.HasPrefix(resp["paymentReference"].(string), "PAY-"))

	code, _ = doJSON(t, r, "POST", "/api/payment", payment)
	assert.Equal(t, http.StatusNotFound, code)

	// The stored row ends CONFIRMED with the address and reference intact
	var order models.Order
	assert.NoError(t, db.First(&order, "id = ?", orderID).Error)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.True(t, strings.HasPrefix(order.PaymentID, "PAY-"))

	addr, err := order.DeliveryAddress()
	assert.NoError(t, err)
	assert.Equal(t, "12 Elm Street", addr.Street)

	stored, err := order.CartItems()
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].Quantity)
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB()
	r := router.SetupRouter(db)

	code, resp := doJSON(t, r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp["status"])
}
