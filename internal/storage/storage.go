// Package storage defines the persistence port for the stores.
//
// The persisted layout is deliberately dumb: a string-keyed key-value space
// holding one JSON document per collection, overwritten whole on every
// mutation. That matches how the original front end used browser local
// storage, and keeping the port this narrow is what lets a real engine
// (see the sqlite backend) slot in without touching store logic.
//
// Atomicity is per Set only — there is no multi-key transaction. A cascade
// that touches two collections issues two Sets; last write wins.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// The three keys the stores persist under. Values are field-tagged JSON
// with dates as ISO-8601 strings (encoding/json renders time.Time as
// RFC 3339, and parses it back into a time.Time — no string-typed dates
// survive a round trip).
const (
	KeySession      = "user"         // serialized User record, absent when signed out
	KeyAchievements = "achievements" // serialized ordered Achievement sequence
	KeyComments     = "comments"     // serialized ordered Comment sequence
)

// KV is the storage port. ok reports whether the key was present — an
// absent key is not an error, it just means nothing has been persisted yet
// (the stores seed sample data in that case).
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LoadJSON reads key and unmarshals it into v. Returns false with no error
// when the key is absent; v is left untouched in that case.
func LoadJSON(ctx context.Context, kv KV, key string, v any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("storage: reading %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("storage: decoding %q: %w", key, err)
	}
	return true, nil
}

// SaveJSON marshals v and writes it under key in one Set.
func SaveJSON(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: encoding %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("storage: writing %q: %w", key, err)
	}
	return nil
}
