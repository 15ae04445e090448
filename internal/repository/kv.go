// Package repository persists every collection as a whole JSON blob under a
// fixed key — the same model the browser storage layer used. Each mutation is
// a read-modify-write cycle: load the full collection, change it in memory,
// store it back. That makes last-write-wins the documented consistency model;
// there is no per-record locking and none is promised.
package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Storage keys. Fixed set — adding a collection means adding a key here.
const (
	KeyBusinessProfiles = "receipt_business_profiles"
	KeyReceipts         = "receipt_receipts"
	KeyInvoices         = "receipt_invoices"
	KeyCurrentProfile   = "receipt_current_profile"
	KeySettings         = "receipt_settings"
)

// ErrNotFound is returned when a record id is absent from its collection.
var ErrNotFound = errors.New("record not found")

// KV is the minimal key-value contract the repositories need.
type KV interface {
	// Get returns the raw blob and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

type redisKV struct{ rdb *redis.Client }

// NewRedisKV wraps a go-redis client as the persistence collaborator.
func NewRedisKV(rdb *redis.Client) KV { return &redisKV{rdb: rdb} }

func (s *redisKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *redisKV) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *redisKV) Del(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
