package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// RazorpayClient creates payment orders and verifies the signatures the
// gateway sends back on its asynchronous callback. Credentials come from
// the injected config; the secret is never logged.
type RazorpayClient struct {
	config utils.GatewayConfig
	client *http.Client
	log    *zap.Logger
}

func NewRazorpayClient(config utils.GatewayConfig, log *zap.Logger) *RazorpayClient {
	return &RazorpayClient{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With(zap.String("gateway", "razorpay")),
	}
}

type orderRequest struct {
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Receipt        string `json:"receipt"`
	PaymentCapture int    `json:"payment_capture"`
}

type orderResponse struct {
	ID string `json:"id"`
}

// CreateOrder registers a payment order with the provider and returns its
// order id. Amount is in minor currency units. Failures are not retried
// here; the caller decides.
func (c *RazorpayClient) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error) {
	body, err := json.Marshal(orderRequest{
		Amount:         amount,
		Currency:       currency,
		Receipt:        receipt,
		PaymentCapture: 1, // auto capture
	})
	if err != nil {
		return "", fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.KeyID, c.config.KeySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Order creation request failed",
			zap.Error(err),
			zap.String("receipt", receipt),
		)
		return "", fmt.Errorf("create order for receipt %s: %w", receipt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for debugging, never the credentials.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Error("Order creation rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("receipt", receipt),
			zap.ByteString("body", snippet),
		)
		return "", fmt.Errorf("create order for receipt %s: provider returned status %d", receipt, resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("decode order response for receipt %s: %w", receipt, err)
	}
	if order.ID == "" {
		return "", fmt.Errorf("create order for receipt %s: provider returned empty order id", receipt)
	}

	c.log.Info("Payment order created",
		zap.String("order_id", order.ID),
		zap.String("receipt", receipt),
		zap.Int64("amount", amount),
		zap.String("currency", currency),
	)

	return order.ID, nil
}

// VerifySignature recomputes HMAC-SHA256(secret, order_id + "|" + payment_id)
// as lowercase hex and compares it to the callback signature in constant
// time. Any missing field fails closed.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.config.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
