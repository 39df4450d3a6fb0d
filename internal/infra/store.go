package infra

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketName = "autotrader"

// NewStore opens the embedded store that backs the exit ledger and the
// email settings. The store is a single file; a second process opening
// it would block, which is why Open carries a timeout.
func NewStore(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create store bucket: %w", err)
	}

	return db, nil
}

// Bucket returns the name of the single bucket all keys live in
func Bucket() []byte {
	return []byte(bucketName)
}
