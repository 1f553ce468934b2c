package ports

import "context"

// Storage keys for the four top-level blobs. The presentation layer must never
// read or write these directly; all access goes through the core services.
const (
	KeyUsers        = "users"
	KeyCurrentUser  = "current_user"
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
)

// BlobStore is the synchronous key/value contract the core persists through.
// Values are UTF-8 JSON documents. The store offers no transactional guarantee
// beyond last-write-wins; every mutation in the core is a full
// read-modify-write of one key on a single writer.
type BlobStore interface {
	// Get returns the value at key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
