package paystack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"message": "Transactions retrieved",
			"data": [
				{
					"id": 1001,
					"reference": "ref-1",
					"amount": 250000,
					"status": "success",
					"channel": "card",
					"paid_at": "2024-03-15T14:30:45.000Z",
					"customer": {"email": "chidi@example.com", "first_name": "Chidi", "last_name": "Okafor"}
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test_abc", srv.URL)

	txns, err := client.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(1001), txns[0].ID)
	assert.Equal(t, "ref-1", txns[0].Reference)
	assert.Equal(t, 250000.0, txns[0].Amount)
	assert.Equal(t, "success", txns[0].Status)
	assert.Equal(t, "chidi@example.com", txns[0].Customer.Email)
}

func TestListTransactions_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test_abc", srv.URL)

	txns, err := client.ListTransactions(context.Background())

	require.Error(t, err)
	assert.Nil(t, txns)
	assert.Contains(t, err.Error(), "Invalid key")
}

func TestListTransactions_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("sk_test_abc", srv.URL)

	_, err := client.ListTransactions(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestListTransactions_NotConfigured(t *testing.T) {
	client := NewClient("", "")

	_, err := client.ListTransactions(context.Background())

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("sk_test_abc", "")

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.True(t, client.IsConfigured())
}
