// Package client implements the mobile app side of the order flow: a
// locally authoritative cart that mirrors itself to the backend and the
// HTTP calls for checkout and payment.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/slicely/pizza-order-backend/models"
)

// ErrOrderNotFound mirrors the backend's conflated 404: unknown order,
// wrong owner, or an order already past the expected status.
var ErrOrderNotFound = errors.New("order not found")

// ErrInvalidRequest mirrors a 400 from the backend.
var ErrInvalidRequest = errors.New("invalid request")

// APIError carries the backend's {"error": ...} payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusNotFound:
		return ErrOrderNotFound
	}
	return nil
}

// API is the HTTP wrapper around the four backend endpoints.
type API struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAPI creates an API client with the transport default timeout.
func NewAPI(baseURL string, logger *logrus.Logger) (*API, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute")
	}
	return &API{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SyncRequest is the full cart snapshot pushed on every local mutation.
type SyncRequest struct {
	UserID string            `json:"userId"`
	Items  []models.CartItem `json:"items"`
	Total  float64           `json:"total"`
	CartID string            `json:"cartId,omitempty"`
}

// SyncResponse acknowledges a cart upsert. OrderID is the canonical
// cartId to use for all subsequent calls.
type SyncResponse struct {
	Message string  `json:"message"`
	OrderID string  `json:"orderId"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
}

type CheckoutResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

type PaymentResponse struct {
	Message          string `json:"message"`
	OrderID          string `json:"orderId"`
	Status           string `json:"status"`
	PaymentReference string `json:"paymentReference"`
}

type menuResponse struct {
	Message string         `json:"message"`
	Data    []models.Pizza `json:"data"`
}

// ListMenu fetches the pizza catalog.
func (a *API) ListMenu(ctx context.Context) ([]models.Pizza, error) {
	req, err := a.newRequest(ctx, http.MethodGet, "/api/pizzas", nil)
	if err != nil {
		return nil, err
	}
	var out menuResponse
	if err := a.do(req, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// SyncCart pushes a cart snapshot.
func (a *API) SyncCart(ctx context.Context, sync SyncRequest) (*SyncResponse, error) {
	req, err := a.newRequest(ctx, http.MethodPost, "/api/cart", sync)
	if err != nil {
		return nil, err
	}
	var out SyncResponse
	if err := a.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkout attaches delivery details to a PENDING order.
func (a *API) Checkout(ctx context.Context, orderID, userID string, addr models.Address) (*CheckoutResponse, error) {
	body := map[string]interface{}{
		"orderId": orderID,
		"userId":  userID,
		"address": addr,
	}
	req, err := a.newRequest(ctx, http.MethodPost, "/api/checkout", body)
	if err != nil {
		return nil, err
	}
	var out CheckoutResponse
	if err := a.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pay finalizes a CHECKOUT_COMPLETE order. The payment details are
// forwarded verbatim; the backend discards them.
func (a *API) Pay(ctx context.Context, orderID, userID string, details interface{}) (*PaymentResponse, error) {
	body := map[string]interface{}{
		"orderId":        orderID,
		"userId":         userID,
		"paymentDetails": details,
	}
	req, err := a.newRequest(ctx, http.MethodPost, "/api/payment", body)
	if err != nil {
		return nil, err
	}
	var out PaymentResponse
	if err := a.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	endpoint := *a.baseURL
	endpoint.Path = path

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (a *API) do(req *http.Request, out interface{}) error {
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(raw, &failure); err != nil || failure.Error == "" {
			failure.Error = resp.Status
		}
		a.logger.Warnf("%s %s failed: %d %s", req.Method, req.URL.Path, resp.StatusCode, failure.Error)
		return &APIError{StatusCode: resp.StatusCode, Message: failure.Error}
	}

	return json.Unmarshal(raw, out)
}
