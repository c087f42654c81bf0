package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"sort"
	"time"
)

// HTTPStore serves feeds mirrored behind an HTTP endpoint as
// <baseURL>/<roomID>.ics. HTTP gives no directory listing, so the room set
// is fixed at construction.
type HTTPStore struct {
	baseURL string
	rooms   []string
	client  *http.Client
}

func NewHTTPStore(baseURL string, rooms []string) (*HTTPStore, error) {
	parsed, err := neturl.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid feeds url: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme: %s", parsed.Scheme)
	}

	sorted := append([]string{}, rooms...)
	sort.Strings(sorted)

	return &HTTPStore{
		baseURL: baseURL,
		rooms:   sorted,
		client: &http.Client{
			//nolint:mnd //reasonable timeout for fetching external calendars
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (store *HTTPStore) Open(
	ctx context.Context,
	roomID string,
) (io.ReadCloser, error) {
	if !store.knows(roomID) {
		return nil, fmt.Errorf("%s: %w", roomID, ErrNotFound)
	}

	url := fmt.Sprintf("%s/%s%s", store.baseURL, roomID, icsExtension)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", "salledispo/1.0")
	req.Header.Set("Accept", "text/calendar")

	resp, err := store.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", roomID, ErrNotFound)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("non-200 from feed mirror: %d", resp.StatusCode)
	}

	return resp.Body, nil
}

func (store *HTTPStore) List(_ context.Context) ([]string, error) {
	return append([]string{}, store.rooms...), nil
}

func (store *HTTPStore) knows(roomID string) bool {
	for _, room := range store.rooms {
		if room == roomID {
			return true
		}
	}

	return false
}

var _ Store = (*HTTPStore)(nil)
