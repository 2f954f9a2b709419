package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MarkerStore tracks which feedback items this client has already upvoted,
// keyed by feedback id. It is the local, low-integrity analog of a browser's
// localStorage: clearing it lets the same client vote again, and the server
// does not cross-check it.
type MarkerStore interface {
	Has(feedbackID string) bool
	Set(feedbackID string) error
	Clear(feedbackID string) error
}

// MemoryMarkerStore keeps markers for the lifetime of the process.
type MemoryMarkerStore struct {
	ids map[string]bool
}

func NewMemoryMarkerStore() *MemoryMarkerStore {
	return &MemoryMarkerStore{ids: map[string]bool{}}
}

func (s *MemoryMarkerStore) Has(feedbackID string) bool { return s.ids[feedbackID] }

func (s *MemoryMarkerStore) Set(feedbackID string) error {
	s.ids[feedbackID] = true
	return nil
}

func (s *MemoryMarkerStore) Clear(feedbackID string) error {
	delete(s.ids, feedbackID)
	return nil
}

// FileMarkerStore persists markers as a JSON set so upvote state survives
// separate CLI invocations.
type FileMarkerStore struct {
	path string
	ids  map[string]bool
}

func NewFileMarkerStore(path string) (*FileMarkerStore, error) {
	s := &FileMarkerStore{path: path, ids: map[string]bool{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.ids); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileMarkerStore) Has(feedbackID string) bool { return s.ids[feedbackID] }

func (s *FileMarkerStore) Set(feedbackID string) error {
	s.ids[feedbackID] = true
	return s.save()
}

func (s *FileMarkerStore) Clear(feedbackID string) error {
	delete(s.ids, feedbackID)
	return s.save()
}

func (s *FileMarkerStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s.ids)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
