package scan

import (
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

const (
	dbFileName = "hotview_skiplist.db"
	// SkipBucket holds one key per path that failed to decode.
	SkipBucket = "SkipList"
)

// SkipStore is the durable skip-list: paths known to be undecodable,
// excluded from merges until explicitly cleared. Backed by a small
// BoltDB file so the list survives restarts.
type SkipStore struct {
	db     *bolt.DB
	logger LoggerFunc
}

// NewSkipStore creates or opens the skip-list database. dbDir names
// the directory for the db file; when empty the user config directory
// is used, falling back to the current directory.
func NewSkipStore(dbDir string, logger LoggerFunc) (*SkipStore, error) {
	if logger == nil {
		logger = func(string) {}
	}
	if dbDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logger(fmt.Sprintf("could not get user config dir: %v, using current dir", err))
			dbDir = "."
		} else {
			appDir := filepath.Join(configDir, "hotview")
			if err := os.MkdirAll(appDir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create config directory %s: %w", appDir, err)
			}
			dbDir = appDir
		}
	}

	dbPath := filepath.Join(dbDir, dbFileName)
	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open skip-list database %s: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(SkipBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", SkipBucket, err)
	}

	return &SkipStore{db: db, logger: logger}, nil
}

// Add records path as undecodable.
func (ss *SkipStore) Add(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	return ss.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(SkipBucket)).Put([]byte(path), []byte{})
	})
}

// Contains reports whether path is on the skip-list.
func (ss *SkipStore) Contains(path string) bool {
	var found bool
	err := ss.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket([]byte(SkipBucket)).Get([]byte(path)) != nil
		return nil
	})
	if err != nil {
		ss.logger(fmt.Sprintf("skip-list lookup for %s failed: %v", path, err))
		return false
	}
	return found
}

// Paths returns every skip-listed path.
func (ss *SkipStore) Paths() ([]string, error) {
	var paths []string
	err := ss.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(SkipBucket)).ForEach(func(k, _ []byte) error {
			paths = append(paths, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list skip-list paths: %w", err)
	}
	return paths, nil
}

// Clear empties the skip-list so the next scan reinspects every file.
func (ss *SkipStore) Clear() error {
	return ss.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(SkipBucket)); err != nil {
			return fmt.Errorf("failed to drop bucket %s: %w", SkipBucket, err)
		}
		_, err := tx.CreateBucket([]byte(SkipBucket))
		return err
	})
}

// Close closes the underlying database.
func (ss *SkipStore) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
