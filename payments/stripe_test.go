package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession_ReturnsRedirectURL(t *testing.T) {
	var gotForm map[string]string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.Equal(t, "Bearer sk_test_key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"mode":                    r.PostFormValue("mode"),
			"line_items[0][price]":    r.PostFormValue("line_items[0][price]"),
			"line_items[0][quantity]": r.PostFormValue("line_items[0][quantity]"),
			"success_url":             r.PostFormValue("success_url"),
			"cancel_url":              r.PostFormValue("cancel_url"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	}))
	defer provider.Close()

	client := NewClient("sk_test_key", "http://localhost:8080", provider.URL)
	url, err := client.CreateCheckoutSession(context.Background(), "price_123")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", url)

	assert.Equal(t, map[string]string{
		"mode":                    "payment",
		"line_items[0][price]":    "price_123",
		"line_items[0][quantity]": "1",
		"success_url":             "http://localhost:8080/success.html",
		"cancel_url":              "http://localhost:8080/cancel.html",
	}, gotForm)
}

func TestCreateCheckoutSession_ProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"No such price: 'price_gone'"}}`))
	}))
	defer provider.Close()

	client := NewClient("sk_test_key", "http://localhost:8080", provider.URL)
	_, err := client.CreateCheckoutSession(context.Background(), "price_gone")
	require.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "No such price: 'price_gone'")
}

func TestCreateCheckoutSession_MalformedPriceNeverReachesProvider(t *testing.T) {
	calls := 0
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer provider.Close()

	client := NewClient("sk_test_key", "http://localhost:8080", provider.URL)
	for _, price := range []string{"", "42", "price_", "price_123; DROP", "prices_123"} {
		_, err := client.CreateCheckoutSession(context.Background(), price)
		assert.ErrorIs(t, err, ErrGateway, "price %q must be rejected", price)
	}
	assert.Zero(t, calls, "malformed price ids must be rejected before the gateway call")
}

func TestCreateCheckoutSession_MissingURL(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"cs_test_1"}`))
	}))
	defer provider.Close()

	client := NewClient("sk_test_key", "http://localhost:8080", provider.URL)
	_, err := client.CreateCheckoutSession(context.Background(), "price_123")
	assert.ErrorIs(t, err, ErrGateway)
}

func TestCreateCheckoutSession_ProviderUnreachable(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	provider.Close()

	client := NewClient("sk_test_key", "http://localhost:8080", provider.URL)
	_, err := client.CreateCheckoutSession(context.Background(), "price_123")
	assert.ErrorIs(t, err, ErrGateway)
}
