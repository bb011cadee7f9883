package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultistcircle/circlebot/internal/models"
)

const itemsJSON = `{"items":[
	{"name":"Physical Bitcoin","shortName":"0.2BTC","basePrice":100000,"pvePrice":95000},
	{"name":"Bottle of Fierce Hatchling moonshine","shortName":"Moonshine","basePrice":200000,"pvePrice":210000}
]}`

func TestClientFetchesAndCaches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(itemsJSON))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL), WithTTL(time.Minute))
	ctx := context.Background()

	catalog, err := client.Items(ctx)
	require.NoError(t, err)
	require.Len(t, catalog.Items, 2)
	assert.Equal(t, "Physical Bitcoin", catalog.Items[0].Name)
	assert.False(t, catalog.FetchedAt.IsZero())

	// Second call is served from cache.
	again, err := client.Items(ctx)
	require.NoError(t, err)
	assert.Len(t, again.Items, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientExpiredCacheRefetches(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(itemsJSON))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL), WithTTL(10*time.Millisecond))
	ctx := context.Background()

	_, err := client.Items(ctx)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = client.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClientMissingItemList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL))
	_, err := client.Items(context.Background())
	assert.True(t, errors.Is(err, models.ErrMissingCatalog), "err = %v", err)
}

func TestClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL))
	_, err := client.Items(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClientContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(itemsJSON))
	}))
	defer srv.Close()

	client := NewClient(WithURL(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Items(ctx)
	require.Error(t, err)
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}
