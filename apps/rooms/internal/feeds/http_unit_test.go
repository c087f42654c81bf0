package feeds_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"salledispo.app/apps/rooms/internal/feeds"
)

func TestHTTPStoreOpen(t *testing.T) {
	srv := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/204.ics" {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			w.Write([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"))
		}),
	)
	defer srv.Close()

	store, err := feeds.NewHTTPStore(srv.URL, []string{"204", "101"})
	require.NoError(t, err)

	feed, err := store.Open(context.Background(), "204")
	require.NoError(t, err)
	defer feed.Close()

	content, err := io.ReadAll(feed)
	require.NoError(t, err)
	assert.Contains(t, string(content), "BEGIN:VCALENDAR")

	_, err = store.Open(context.Background(), "101")
	assert.ErrorIs(t, err, feeds.ErrNotFound)
}

func TestHTTPStoreOpenUnknownRoom(t *testing.T) {
	store, err := feeds.NewHTTPStore("http://localhost:1", []string{"204"})
	require.NoError(t, err)

	// unknown rooms never hit the network
	_, err = store.Open(context.Background(), "999")
	assert.ErrorIs(t, err, feeds.ErrNotFound)
}

func TestHTTPStoreList(t *testing.T) {
	store, err := feeds.NewHTTPStore("http://localhost:1", []string{"B", "A"})
	require.NoError(t, err)

	rooms, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, rooms)
}

func TestNewHTTPStoreRejectsBadURL(t *testing.T) {
	_, err := feeds.NewHTTPStore("ftp://example.com", nil)
	assert.Error(t, err)
}
