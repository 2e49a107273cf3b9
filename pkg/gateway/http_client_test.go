package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOfferings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/product-offerings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"sys_id":"a1","u_name":"Laptop Pro 15","u_description":"Powerful laptop","u_price":1499.99,"u_category":"Computers","u_status":"active"},
			{"sys_id":"a2","u_name":"","u_price":"25","u_category":"Accessories"}
		]`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	offerings, err := client.ListOfferings(context.Background())

	require.NoError(t, err)
	require.Len(t, offerings, 2)

	assert.Equal(t, "Laptop Pro 15", offerings[0].Name)
	assert.Equal(t, 1499.99, offerings[0].Price)

	// Missing name is normalized, never raised
	assert.Equal(t, PlaceholderName, offerings[1].Name)
	// Quoted price strings still parse
	assert.Equal(t, 25.0, offerings[1].Price)
}

func TestGetOffering(t *testing.T) {
	t.Run("single record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/product-offerings/a1", r.URL.Path)
			w.Write([]byte(`{"sys_id":"a1","u_name":"Desk Lamp","u_price":"oops","u_category":"Lighting"}`))
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, 5*time.Second)
		offering, err := client.GetOffering(context.Background(), "a1")

		require.NoError(t, err)
		assert.Equal(t, "Desk Lamp", offering.Name)
		// Unparseable price degrades to zero
		assert.Equal(t, 0.0, offering.Price)
	})

	t.Run("non-200 is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewHTTPClient(srv.URL, 5*time.Second)
		_, err := client.GetOffering(context.Background(), "missing")
		assert.Error(t, err)
	})
}

func TestListOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		w.Write([]byte(`[{"sys_id":"o1","u_number":"ORD-001","u_status":"shipped","u_total":199.5}]`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, 5*time.Second)
	orders, err := client.ListOrders(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].Number)
	assert.Equal(t, 199.5, orders[0].Total)
}
