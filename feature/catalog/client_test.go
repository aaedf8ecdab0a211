package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"price-sync/core/httpx"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const btcProduct = `{"product": {
	"id": 24432181250,
	"title": "Bitcoin",
	"variants": [
		{"id": 1001, "title": "1 BTC", "price": "55000.00"},
		{"id": 1002, "title": "0.5 BTC", "price": "27500.00"}
	]
}}`

type recordedRequest struct {
	Method string
	Path   string
	User   string
	Pass   string
	Body   []byte
}

// fakeStore is an httptest server mimicking the store admin API.
type fakeStore struct {
	mu       sync.Mutex
	requests []recordedRequest
	srv      *httptest.Server
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	s := &fakeStore{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, _ := r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, User: user, Pass: pass, Body: body})
		s.mu.Unlock()

		if user != "key" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors": "[API] Invalid API key or access token"}`))
			return
		}

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/products/24432181250.json":
			_, _ = w.Write([]byte(btcProduct))
		case r.Method == http.MethodGet && r.URL.Path == "/admin/products/500.json":
			w.WriteHeader(http.StatusInternalServerError)
		case r.Method == http.MethodGet && r.URL.Path == "/admin/products/badprice.json":
			_, _ = w.Write([]byte(`{"product": {"id": 1, "variants": [{"id": 1, "title": "1 BTC", "price": "n/a"}]}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/admin/products/empty.json":
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPut && r.URL.Path == "/admin/variants/1001.json":
			_, _ = w.Write([]byte(`{"variant": {"id": 1001}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors": "Not Found"}`))
		}
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *fakeStore) last() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{BaseURL: baseURL, ApiKey: "key", Password: "secret", TimeoutSeconds: 2})
}

func TestClient_FetchItem(t *testing.T) {
	store := newFakeStore(t)
	c := newTestClient(store.srv.URL)

	item, err := c.FetchItem(context.Background(), "24432181250")
	require.NoError(t, err)

	assert.Equal(t, "24432181250", item.ID)
	assert.Equal(t, "Bitcoin", item.Title)
	require.Len(t, item.Variants, 2)
	assert.Equal(t, "1001", item.Variants[0].ID)
	assert.Equal(t, "1 BTC", item.Variants[0].Label)
	assert.True(t, item.Variants[0].Price.Equal(decimal.NewFromInt(55000)))
	assert.Equal(t, "0.5 BTC", item.Variants[1].Label)

	req := store.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "key", req.User)
	assert.Equal(t, "secret", req.Pass)
}

func TestClient_FetchItem_Errors(t *testing.T) {
	store := newFakeStore(t)
	c := newTestClient(store.srv.URL)

	tests := []struct {
		name     string
		id       string
		wantCode int
		wantErr  string
	}{
		{name: "Not found", id: "404", wantCode: http.StatusNotFound},
		{name: "Server error", id: "500", wantCode: http.StatusInternalServerError},
		{name: "Bad price", id: "badprice", wantErr: "price"},
		{name: "Missing product", id: "empty", wantErr: "missing from response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.FetchItem(context.Background(), tt.id)
			require.Error(t, err)
			if tt.wantCode != 0 {
				var se *httpx.StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tt.wantCode, se.Code)
			}
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}

	t.Run("Bad credentials", func(t *testing.T) {
		bad := NewClient(Config{BaseURL: store.srv.URL, ApiKey: "key", Password: "wrong"})
		_, err := bad.FetchItem(context.Background(), "24432181250")
		var se *httpx.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusUnauthorized, se.Code)
	})
}

func TestClient_SetPrice(t *testing.T) {
	store := newFakeStore(t)
	c := newTestClient(store.srv.URL)

	require.NoError(t, c.SetPrice(context.Background(), "1001", decimal.RequireFromString("56100.00")))

	req := store.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/admin/variants/1001.json", req.Path)
	assert.Equal(t, "key", req.User)
	assert.JSONEq(t, `{"variant": {"id": 1001, "price": "56100"}}`, string(req.Body))
}

func TestClient_SetPrice_NonNumericID(t *testing.T) {
	store := newFakeStore(t)
	c := newTestClient(store.srv.URL)

	err := c.SetPrice(context.Background(), "gid-7", decimal.RequireFromString("28050"))
	var se *httpx.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)

	var body map[string]map[string]any
	require.NoError(t, json.Unmarshal(store.last().Body, &body))
	assert.Equal(t, "gid-7", body["variant"]["id"])
	assert.Equal(t, "28050", body["variant"]["price"])
}
