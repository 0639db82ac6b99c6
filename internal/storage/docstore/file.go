package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each document as a JSON file under a data directory.
// Same-key writes are serialized with a per-key mutex, so the revision
// check in Save is race-free within a single process. Multi-instance
// deployments need the postgres backend instead.
type FileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileStore{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *FileStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}

	return l
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Load(_ context.Context, key string) (Document, bool, error) {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	return s.read(key)
}

func (s *FileStore) read(key string) (Document, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return Document{SchemaVersion: SchemaVersion}, false, nil
	}
	if err != nil {
		return Document{}, false, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}

	return doc, true, nil
}

func (s *FileStore) Save(_ context.Context, key string, doc Document) error {
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	current, _, err := s.read(key)
	if err != nil {
		return err
	}

	if current.Revision != doc.Revision {
		return ErrRevisionConflict
	}

	doc.SchemaVersion = SchemaVersion
	doc.Revision++

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	// Write to a temp file and rename so a crash never leaves a torn document.
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %q: %w", key, err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %q: %w", key, err)
	}

	if err = os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace document %q: %w", key, err)
	}

	return nil
}
