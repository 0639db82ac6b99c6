package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// SchemaVersion is stamped into every saved document so future format
// changes can be migrated on read.
const SchemaVersion = 1

// Document is one whole stored collection. The store never merges: every
// save replaces the full document. Revision carries the optimistic
// concurrency token; Save succeeds only when the stored revision still
// matches the one the caller loaded.
type Document struct {
	SchemaVersion int             `json:"schema_version"`
	Revision      int64           `json:"revision"`
	Records       json.RawMessage `json:"records"`
}

// ErrRevisionConflict is returned by Save when another writer persisted the
// document between the caller's Load and Save. Callers retry the whole
// read-modify-write sequence.
var ErrRevisionConflict = errors.New("document revision conflict")

type Store interface {
	// Load returns the document stored under key. The second result is
	// false when the key has never been written; that is not an error.
	Load(ctx context.Context, key string) (Document, bool, error)

	// Save replaces the document under key. doc.Revision must be the
	// revision returned by Load (zero for a new key); the stored document
	// gets doc.Revision+1.
	Save(ctx context.Context, key string, doc Document) error
}
