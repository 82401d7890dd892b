package main

import (
	"errors"
	"fmt"
	"gridEditor/contracts"

	"go.etcd.io/bbolt"
)

var snapshotsBucket = []byte("grids")

// SnapshotRepository key-value storage of serialized grids
type SnapshotRepository struct {
	db *bbolt.DB
}

func NewSnapshotRepository(db *bbolt.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(key string, data []byte) error {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(snapshotsBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(key), data)
	})

	if err != nil {
		return fmt.Errorf("%w: save `%s`: %w", contracts.PersistenceError, key, err)
	}
	return nil
}

func (r *SnapshotRepository) Load(key string) (data []byte, err error) {
	err = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(snapshotsBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", key, contracts.SnapshotNotFoundError)
		}

		value := bucket.Get([]byte(key))
		if value == nil {
			return fmt.Errorf("%s: %w", key, contracts.SnapshotNotFoundError)
		}

		// value is only valid inside the transaction
		data = append([]byte(nil), value...)
		return nil
	})

	if err != nil {
		if errors.Is(err, contracts.SnapshotNotFoundError) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: load `%s`: %w", contracts.PersistenceError, key, err)
	}

	return data, nil
}
