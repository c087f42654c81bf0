// Package feeds gives access to raw ICS calendar feeds keyed by room
// identifier. Feeds are read fresh on every call; nothing is cached, so a
// request always reflects the latest feed content.
package feeds

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound reports that no feed exists for the requested room. Callers
// use errors.Is to tell it apart from an unreadable feed.
var ErrNotFound = errors.New("no calendar feed for this room")

type Store interface {
	// Open returns the feed bytes for one room. The caller closes.
	Open(ctx context.Context, roomID string) (io.ReadCloser, error)
	// List returns the identifiers of all rooms with a feed, sorted.
	List(ctx context.Context) ([]string, error)
}
