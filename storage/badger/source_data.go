package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/storage"
)

// SourceDataRepository implements storage.SourceDataRepository for BadgerDB.
type SourceDataRepository struct {
	backend *Backend
}

var _ storage.SourceDataRepository = (*SourceDataRepository)(nil)

// NewSourceDataRepository creates a new SourceDataRepository.
func NewSourceDataRepository(backend *Backend) (*SourceDataRepository, error) {
	return &SourceDataRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *SourceDataRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SourceDataRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddSourceData adds one or more source documents to storage.
func (r *SourceDataRepository) AddSourceData(ctx context.Context, records ...*core.SourceData) ([]*core.SourceData, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			// Derive a content-based ID so re-ingesting the same document
			// lands on the same key.
			if record.Id == 0 {
				record.Id = core.IDFromContent(record.TopicName + "|" + record.Content)
			}

			record.InsertedAt = time.Now().UTC()
			record.UpdatedAt = record.InsertedAt

			// Store primary record
			key := makeSourceDataKey(record.Id)
			value := storage.MarshalSourceData(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index
			topicKey := makeTopicKey(sourceDataTopicPrefix, record.TopicName, record.Id)
			if err := tx.Set(topicKey, storage.MarshalID(record.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// UpdateSourceData updates existing source documents.
func (r *SourceDataRepository) UpdateSourceData(ctx context.Context, records ...*core.SourceData) ([]*core.SourceData, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			key := makeSourceDataKey(record.Id)

			// Read old record to detect changes
			old, err := r.readSourceData(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			record.InsertedAt = old.InsertedAt
			record.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalSourceData(record)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index if the topic changed
			if old.TopicName != record.TopicName {
				oldTopicKey := makeTopicKey(sourceDataTopicPrefix, old.TopicName, old.Id)
				if err := tx.Delete(oldTopicKey); err != nil {
					return err
				}
				newTopicKey := makeTopicKey(sourceDataTopicPrefix, record.TopicName, record.Id)
				if err := tx.Set(newTopicKey, storage.MarshalID(record.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return records, err
}

// DeleteSourceData removes source documents by their IDs.
func (r *SourceDataRepository) DeleteSourceData(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSourceDataKey(id)

			// Read record to get metadata for index cleanup
			record, err := r.readSourceData(tx, key)
			if err != nil {
				return err
			}
			if record == nil {
				return storage.ErrNotFound
			}

			// Delete from topic index
			topicKey := makeTopicKey(sourceDataTopicPrefix, record.TopicName, record.Id)
			if err := tx.Delete(topicKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetSourceData retrieves a single source document by ID.
func (r *SourceDataRepository) GetSourceData(ctx context.Context, id core.ID) (*core.SourceData, error) {
	var result *core.SourceData
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSourceDataKey(id)
		var err error
		result, err = r.readSourceData(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetSourceDataBatch retrieves multiple source documents by their IDs.
func (r *SourceDataRepository) GetSourceDataBatch(ctx context.Context, ids ...core.ID) ([]*core.SourceData, error) {
	var result []*core.SourceData
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeSourceDataKey(id)
			record, err := r.readSourceData(tx, key)
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetSourceDataByTopic retrieves all source documents belonging to a topic.
func (r *SourceDataRepository) GetSourceDataByTopic(ctx context.Context, topicName string) ([]*core.SourceData, error) {
	var result []*core.SourceData
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTopicKey(sourceDataTopicPrefix, topicName)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			record, err := r.readSourceData(tx, makeSourceDataKey(id))
			if err != nil {
				return err
			}
			if record != nil {
				result = append(result, record)
			}
		}
		return nil
	}, false)
	return result, err
}

// TopicExists reports whether any source document is stored for the topic.
func (r *SourceDataRepository) TopicExists(ctx context.Context, topicName string) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTopicKey(sourceDataTopicPrefix, topicName)
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		iter.Rewind()
		exists = iter.Valid()
		return nil
	}, false)
	return exists, err
}

// readSourceData reads and unmarshals a source document by key.
// Returns nil (no error) if the key does not exist.
func (r *SourceDataRepository) readSourceData(tx *badger.Txn, key []byte) (*core.SourceData, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.SourceData
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalSourceData(val)
		return err
	})
	return record, err
}
