package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/tipsters/pkg/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) (*Client, Credentials) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		if !ok || user != "client" || pass != "secret" || string(body) != "grant_type=client_credentials" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer"}`))
	})
	for path, h := range handlers {
		mux.HandleFunc(path, h)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := New(clients.NewHTTPClient())
	client.requestID = func() string { return "req-1" }
	return client, Credentials{ClientID: "client", ClientSecret: "secret", BaseURL: server.URL}
}

func TestEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		creds    Credentials
		expected string
	}{
		{name: "live", creds: Credentials{Mode: "LIVE"}, expected: LiveBaseURL},
		{name: "sandbox", creds: Credentials{Mode: "sandbox"}, expected: SandboxBaseURL},
		{name: "empty mode", creds: Credentials{}, expected: SandboxBaseURL},
		{name: "explicit base", creds: Credentials{Mode: "live", BaseURL: "http://localhost:9000/"}, expected: "http://localhost:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.creds.Endpoint())
		})
	}
}

func TestToken(t *testing.T) {
	client, creds := newTestServer(t, nil)

	token, err := client.Token(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	_, err = client.Token(context.Background(), Credentials{ClientID: "client", ClientSecret: "wrong", BaseURL: creds.BaseURL})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	_, err = client.Token(context.Background(), Credentials{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateOrder(t *testing.T) {
	client, creds := newTestServer(t, map[string]http.HandlerFunc{
		"/v2/checkout/orders": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			assert.Equal(t, "req-1", r.Header.Get("PayPal-Request-Id"))

			var req createOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "CAPTURE", req.Intent)
			require.Len(t, req.PurchaseUnits, 1)
			assert.Equal(t, "42", req.PurchaseUnits[0].CustomID)
			assert.Equal(t, amount{CurrencyCode: "EUR", Value: "3.50"}, req.PurchaseUnits[0].Amount)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"CREATED"}`))
		},
	})

	order, err := client.CreateOrder(context.Background(), creds, 42, "3.50", "Unlock bet #42")
	require.NoError(t, err)
	assert.Equal(t, &Order{ID: "ORDER-1", Status: "CREATED"}, order)
}

func TestCaptureOrder(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expected      *Capture
		expectedBetID int
		expectedError bool
	}{
		{
			name:   "custom id from capture",
			status: http.StatusCreated,
			body: `{"id":"ORDER-1","status":"COMPLETED","payer":{"email_address":"buyer@example.com"},
				"purchase_units":[{"custom_id":"7","payments":{"captures":[{"custom_id":"42","amount":{"currency_code":"EUR","value":"3.50"}}]}}]}`,
			expected: &Capture{
				OrderID: "ORDER-1", Status: "COMPLETED", CustomID: "42", Amount: "3.50", PayerEmail: "buyer@example.com",
			},
			expectedBetID: 42,
		},
		{
			name:   "custom id falls back to the purchase unit",
			status: http.StatusCreated,
			body:   `{"id":"ORDER-2","status":"COMPLETED","purchase_units":[{"custom_id":"9","payments":{"captures":[{"amount":{"value":"2.90"}}]}}]}`,
			expected: &Capture{
				OrderID: "ORDER-2", Status: "COMPLETED", CustomID: "9", Amount: "2.90",
			},
			expectedBetID: 9,
		},
		{
			name:          "upstream rejects",
			status:        http.StatusUnprocessableEntity,
			body:          `{"name":"UNPROCESSABLE_ENTITY"}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, creds := newTestServer(t, map[string]http.HandlerFunc{
				"/v2/checkout/orders/ORDER-1/capture": func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				},
			})

			capture, err := client.CaptureOrder(context.Background(), creds, "ORDER-1")
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, capture)
			betID, ok := capture.BetID()
			assert.True(t, ok)
			assert.Equal(t, tt.expectedBetID, betID)
		})
	}
}

func TestCaptureBetIDMalformed(t *testing.T) {
	for _, id := range []string{"", "abc", "-3", "0"} {
		_, ok := (&Capture{CustomID: id}).BetID()
		assert.False(t, ok, id)
	}
}

func TestCaptureReusesRequestID(t *testing.T) {
	var ids []string
	client, creds := newTestServer(t, map[string]http.HandlerFunc{
		"/v2/checkout/orders/ORDER-1/capture": func(w http.ResponseWriter, r *http.Request) {
			ids = append(ids, r.Header.Get("PayPal-Request-Id"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"COMPLETED"}`))
		},
		"/v2/checkout/orders/ORDER-2/capture": func(w http.ResponseWriter, r *http.Request) {
			ids = append(ids, r.Header.Get("PayPal-Request-Id"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"ORDER-2","status":"COMPLETED"}`))
		},
	})

	for _, orderID := range []string{"ORDER-1", "ORDER-1", "ORDER-2"} {
		_, err := client.CaptureOrder(context.Background(), creds, orderID)
		require.NoError(t, err)
	}

	require.Len(t, ids, 3)
	assert.Equal(t, CaptureRequestID("ORDER-1"), ids[0])
	assert.Equal(t, ids[0], ids[1])
	assert.NotEqual(t, ids[0], ids[2])
	assert.NotEqual(t, "req-1", ids[0])
}
