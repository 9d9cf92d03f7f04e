// Package blobstore provides the persistence adapter: a durable string-keyed
// store holding one serialized JSON blob per key. Entity repositories own
// read-modify-write sequencing on top of it; the adapter itself offers no
// transactions, so concurrent external writers can race. That limitation is
// accepted, matching the single-writer deployment this system targets.
package blobstore

import "context"

// Store is the persistence adapter contract.
//
// Load decodes the blob at key into dest and reports whether the key was
// present. A blob that fails to decode is treated as absent (logged by the
// implementation) so callers fall back to their defaults; only transport
// failures return an error.
//
// Save replaces the blob at key with the JSON encoding of value.
type Store interface {
	Load(ctx context.Context, key string, dest any) (bool, error)
	Save(ctx context.Context, key string, value any) error
}
