package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/novafin/finance-system/internal/core/ports"
)

// loadJSON reads and decodes the blob at key into v. ok is false when the key
// is absent; v is left untouched in that case.
func loadJSON(ctx context.Context, store ports.BlobStore, key string, v any) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// saveJSON encodes v and writes it at key, replacing the previous value.
func saveJSON(ctx context.Context, store ports.BlobStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// newID returns a random 16-hex-char identifier. Random ids replace the
// original timestamp ids, which collide under rapid successive calls.
func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: current nanoseconds
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
