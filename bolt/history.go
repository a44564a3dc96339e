package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/bobinette/pdfroulette"
)

var (
	historyBucket = []byte("history")
	historyKey    = []byte("viewed")
)

// HistoryRepository persists the view history in a bolt database under a
// single key, as a json array of ids.
type HistoryRepository struct {
	Driver *Driver

	// MaxSize bounds the number of ids kept. 0 or less means
	// pdfroulette.DefaultMaxHistorySize.
	MaxSize int
}

// History returns the persisted view history. A missing key or a payload
// that cannot be decoded counts as an empty history: the history is a
// best-effort cache, it is recreated rather than repaired.
func (r *HistoryRepository) History() (pdfroulette.History, error) {
	var history pdfroulette.History
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		history = decodeHistory(tx.Bucket(historyBucket).Get(historyKey))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return history, nil
}

// Append records id as the most recently viewed pdf, dropping the oldest
// ids once the history is at capacity. The load, bound and persist happen
// in a single transaction.
func (r *HistoryRepository) Append(id string) error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(historyBucket)

		history := decodeHistory(bucket.Get(historyKey))
		history = history.Append(id, r.MaxSize)

		data, err := json.Marshal(history)
		if err != nil {
			return err
		}
		return bucket.Put(historyKey, data)
	})
}

// Clear removes the history key.
func (r *HistoryRepository) Clear() error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(historyBucket).Delete(historyKey)
	})
}

func decodeHistory(data []byte) pdfroulette.History {
	if data == nil {
		return nil
	}

	var history pdfroulette.History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil
	}
	return history
}
