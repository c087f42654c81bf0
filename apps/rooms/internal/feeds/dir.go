package feeds

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const icsExtension = ".ics"

// DirStore serves feeds from a directory holding one <roomID>.ics file per
// room, the layout the exports of the campus scheduling system produce.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (store *DirStore) Open(
	_ context.Context,
	roomID string,
) (io.ReadCloser, error) {
	name, err := store.fileFor(roomID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(store.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", roomID, ErrNotFound)
		}

		return nil, err
	}

	return f, nil
}

func (store *DirStore) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		return nil, err
	}

	rooms := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), icsExtension) {
			continue
		}

		rooms = append(rooms, name[:len(name)-len(icsExtension)])
	}

	sort.Strings(rooms)

	return rooms, nil
}

// fileFor resolves the feed file of a room, matching the extension case
// insensitively (exports occasionally arrive with .ICS).
func (store *DirStore) fileFor(roomID string) (string, error) {
	entries, err := os.ReadDir(store.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", roomID, ErrNotFound)
		}

		return "", err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.EqualFold(name, roomID+icsExtension) {
			return name, nil
		}
	}

	return "", fmt.Errorf("%s: %w", roomID, ErrNotFound)
}

var _ Store = (*DirStore)(nil)
