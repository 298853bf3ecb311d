// Package docstore is the read-only document access the quote engine needs
// from Firestore: a whole collection, or one document by ID.
package docstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrAccessDenied = errors.New("document access denied")
)

type Snapshot interface {
	ID() string
	DataTo(v interface{}) error
}

type Store interface {
	GetDocument(ctx context.Context, collection, id string) (Snapshot, error)
	ListDocuments(ctx context.Context, collection string) ([]Snapshot, error)
}

// IsAccessDenied reports whether err is a permission failure. Firestore
// returns these while App Check attestation is still initializing, so they
// are the only errors worth retrying.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
