package contracts

import "errors"

type SnapshotRepository interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
}

// SnapshotKey the single logical key the grid is saved under
const SnapshotKey = "spreadsheet"

var SnapshotNotFoundError = errors.New("snapshot not found")

var PersistenceError = errors.New("persistence error")
