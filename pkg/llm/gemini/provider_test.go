package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(srv *httptest.Server) *GeminiProvider {
	p := NewGeminiProvider("test-key")
	p.Endpoint = srv.URL
	return p
}

func TestGenerate(t *testing.T) {
	t.Run("passes prompt through and extracts text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			var req geminiRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Len(t, req.Contents, 1)
			require.Equal(t, "what laptops do you sell?", req.Contents[0].Parts[0].Text)

			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"We sell several laptops."}]}}]}`))
		}))
		defer srv.Close()

		got, err := newTestProvider(srv).Generate(context.Background(), "what laptops do you sell?")

		require.NoError(t, err)
		assert.Equal(t, "We sell several laptops.", got)
	})

	t.Run("unexpected shape is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		_, err := newTestProvider(srv).Generate(context.Background(), "hello")
		assert.Error(t, err)
	})

	t.Run("non-200 is a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := newTestProvider(srv).Generate(context.Background(), "hello")
		assert.Error(t, err)
	})
}
