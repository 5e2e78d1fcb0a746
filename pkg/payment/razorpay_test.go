package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *RazorpayClient {
	return NewRazorpayClient(utils.GatewayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "test_secret",
		BaseURL:   baseURL,
		Currency:  "INR",
	}, zap.NewNop())
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := newTestClient("")
	valid := sign("test_secret", "order_abc", "pay_xyz")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid signature", "order_abc", "pay_xyz", valid, true},
		{"tampered signature", "order_abc", "pay_xyz", valid[:len(valid)-1] + "0", false},
		{"wrong order", "order_other", "pay_xyz", valid, false},
		{"wrong payment", "order_abc", "pay_other", valid, false},
		{"uppercase hex rejected", "order_abc", "pay_xyz", strings.ToUpper(valid), false},
		{"empty signature", "order_abc", "pay_xyz", "", false},
		{"empty order id", "", "pay_xyz", valid, false},
		{"empty payment id", "order_abc", "", valid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.VerifySignature(tt.orderID, tt.paymentID, tt.signature))
		})
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	client := newTestClient("")
	signedWithOtherSecret := sign("other_secret", "order_abc", "pay_xyz")
	assert.False(t, client.VerifySignature("order_abc", "pay_xyz", signedWithOtherSecret))
}

func TestCreateOrder_Success(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "order_9A33XWu170gUtm", "status": "created"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orderID, err := client.CreateOrder(context.Background(), 1500000, "INR", "booking_7")
	require.NoError(t, err)
	assert.Equal(t, "order_9A33XWu170gUtm", orderID)

	assert.Equal(t, "/v1/orders", gotPath)
	assert.Equal(t, "rzp_test_key", gotUser)
	assert.Equal(t, "test_secret", gotPass)
	assert.Equal(t, float64(1500000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, "booking_7", gotBody["receipt"])
	assert.Equal(t, float64(1), gotBody["payment_capture"])
}

func TestCreateOrder_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"description": "Authentication failed"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orderID, err := client.CreateOrder(context.Background(), 100000, "INR", "booking_1")
	assert.Empty(t, orderID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCreateOrder_EmptyOrderID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "created"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orderID, err := client.CreateOrder(context.Background(), 100000, "INR", "booking_1")
	assert.Empty(t, orderID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty order id")
}

func TestCreateOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	orderID, err := client.CreateOrder(context.Background(), 100000, "INR", "booking_1")
	assert.Empty(t, orderID)
	assert.Error(t, err)
}
