package bolt

import (
	"net/url"

	"github.com/boltdb/bolt"

	"github.com/bobinette/pdfroulette"
)

var filterBucket = []byte("filters")

// FilterRepository persists the last used filter in a bolt database, one
// key per field. The values use the same encoding as the url query
// parameters, so both representations stay trivially in sync.
type FilterRepository struct {
	Driver *Driver
}

// Filter returns the persisted filter. Missing keys simply leave the
// corresponding fields empty.
func (r *FilterRepository) Filter() (pdfroulette.Filter, error) {
	params := url.Values{}
	err := r.Driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(filterBucket)
		for _, key := range pdfroulette.FilterParamKeys {
			if data := bucket.Get([]byte(key)); data != nil {
				params.Set(key, string(data))
			}
		}
		return nil
	})
	if err != nil {
		return pdfroulette.Filter{}, err
	}

	return pdfroulette.FilterFromQueryParams(params), nil
}

// Save persists f, removing the keys of the fields that are not set so a
// previously saved filter cannot leak into the new one.
func (r *FilterRepository) Save(f pdfroulette.Filter) error {
	params := f.QueryParams()
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(filterBucket)
		for _, key := range pdfroulette.FilterParamKeys {
			value := params.Get(key)
			if value == "" {
				if err := bucket.Delete([]byte(key)); err != nil {
					return err
				}
				continue
			}

			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every filter key.
func (r *FilterRepository) Clear() error {
	return r.Driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(filterBucket)
		for _, key := range pdfroulette.FilterParamKeys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}
