package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/buntdb"
)

// BuntKV is an embedded key-value store backed by a buntdb file.
// Pass ":memory:" as the path for a non-persistent store.
type BuntKV struct {
	db *buntdb.DB
}

// OpenBuntKV opens (or creates) the buntdb database at path.
func OpenBuntKV(path string) (*BuntKV, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bunt database %s: %w", path, err)
	}
	return &BuntKV{db: db}, nil
}

func (b *BuntKV) Get(_ context.Context, key string) (string, bool, error) {
	var value string
	found := false
	err := b.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			if errors.Is(err, buntdb.ErrNotFound) {
				return nil
			}
			return err
		}
		value, found = v, true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, found, nil
}

func (b *BuntKV) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, value, nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (b *BuntKV) Close() error {
	return b.db.Close()
}
