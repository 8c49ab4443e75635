package stripe_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"loja/pkg/stripe"

	"github.com/stretchr/testify/assert"
)

func TestCreateCheckoutSession(t *testing.T) {
	var gotForm map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		assert.NoError(t, r.ParseForm())
		gotForm = make(map[string]string)
		for key := range r.PostForm {
			gotForm[key] = r.PostForm.Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "cs_test_abc", "url": "https://checkout.stripe.com/pay/cs_test_abc"}`))
	}))
	defer server.Close()

	client := stripe.NewClient(stripe.Config{
		APIKey:     "sk_test_secret",
		BaseURL:    server.URL,
		SuccessURL: "https://example.com/success",
		CancelURL:  "https://example.com/cancel",
	})

	session, err := client.CreateCheckoutSession(stripe.SessionParams{
		ClientReferenceID: "cart-1",
		LineItems: []stripe.LineItem{
			{Name: "Product A", Currency: "brl", UnitAmount: 1000, Quantity: 2},
			{Name: "Product B", Currency: "brl", UnitAmount: 550, Quantity: 3},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_abc", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_abc", session.URL)

	assert.Equal(t, "Bearer sk_test_secret", gotAuth)
	assert.Equal(t, "payment", gotForm["mode"])
	assert.Equal(t, "https://example.com/success", gotForm["success_url"])
	assert.Equal(t, "https://example.com/cancel", gotForm["cancel_url"])
	assert.Equal(t, "cart-1", gotForm["client_reference_id"])
	assert.Equal(t, "2", gotForm["line_items[0][quantity]"])
	assert.Equal(t, "brl", gotForm["line_items[0][price_data][currency]"])
	assert.Equal(t, "1000", gotForm["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "Product A", gotForm["line_items[0][price_data][product_data][name]"])
	assert.Equal(t, "550", gotForm["line_items[1][price_data][unit_amount]"])
}

func TestCreateCheckoutSessionAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "Your card was declined."}}`))
	}))
	defer server.Close()

	client := stripe.NewClient(stripe.Config{APIKey: "sk_test_secret", BaseURL: server.URL})

	_, err := client.CreateCheckoutSession(stripe.SessionParams{ClientReferenceID: "cart-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 402")
	assert.Contains(t, err.Error(), "Your card was declined.")
}

func TestCreateCheckoutSessionConnectionError(t *testing.T) {
	client := stripe.NewClient(stripe.Config{APIKey: "sk_test_secret", BaseURL: "http://127.0.0.1:1"})

	_, err := client.CreateCheckoutSession(stripe.SessionParams{ClientReferenceID: "cart-1"})
	assert.Error(t, err)
}
