package badger

import (
	"context"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/storage"
)

// GraphRepository implements storage.GraphRepository for BadgerDB.
type GraphRepository struct {
	backend *Backend
}

var _ storage.GraphRepository = (*GraphRepository)(nil)

// NewGraphRepository creates a new GraphRepository.
func NewGraphRepository(backend *Backend) (*GraphRepository, error) {
	return &GraphRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *GraphRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *GraphRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *GraphRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.TripleMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// AddTriples adds one or more graph triples to storage.
func (r *GraphRepository) AddTriples(ctx context.Context, triples ...*core.GraphTriple) ([]*core.GraphTriple, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, triple := range triples {
			// Content-based ID over the statement plus provenance, so the
			// same fact from the same document dedupes on re-extraction.
			if triple.Id == 0 {
				triple.Id = core.IDFromContent(
					triple.Statement() + "|" + strconv.FormatUint(uint64(triple.SourceDataId), 16))
			}

			triple.InsertedAt = time.Now().UTC()
			triple.UpdatedAt = triple.InsertedAt

			// Store primary record
			key := makeTripleKey(triple.Id)
			value := storage.MarshalGraphTriple(triple)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index
			topicKey := makeTopicKey(tripleTopicPrefix, triple.TopicName, triple.Id)
			if err := tx.Set(topicKey, storage.MarshalID(triple.Id)); err != nil {
				return err
			}

			// Update source index
			sourceKey := makeTripleSourceKey(triple.SourceDataId, triple.Id)
			if err := tx.Set(sourceKey, storage.MarshalID(triple.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return triples, err
}

// DeleteTriples removes triples by their IDs.
func (r *GraphRepository) DeleteTriples(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeTripleKey(id)

			// Read triple to get metadata for index cleanup
			triple, err := r.readTriple(tx, key)
			if err != nil {
				return err
			}
			if triple == nil {
				return storage.ErrNotFound
			}

			// Delete from topic index
			topicKey := makeTopicKey(tripleTopicPrefix, triple.TopicName, triple.Id)
			if err := tx.Delete(topicKey); err != nil {
				return err
			}

			// Delete from source index
			sourceKey := makeTripleSourceKey(triple.SourceDataId, triple.Id)
			if err := tx.Delete(sourceKey); err != nil {
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

// GetTriple retrieves a single triple by ID.
func (r *GraphRepository) GetTriple(ctx context.Context, id core.ID) (*core.GraphTriple, error) {
	var result *core.GraphTriple
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeTripleKey(id)
		var err error
		result, err = r.readTriple(tx, key)
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

// GetTriplesByTopic retrieves all triples belonging to a topic.
func (r *GraphRepository) GetTriplesByTopic(ctx context.Context, topicName string) ([]*core.GraphTriple, error) {
	var result []*core.GraphTriple
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTopicKey(tripleTopicPrefix, topicName)
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

			triple, err := r.readTriple(tx, makeTripleKey(id))
			if err != nil {
				return err
			}
			if triple != nil {
				result = append(result, triple)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetTriplesBySource retrieves all triples extracted from a source document.
func (r *GraphRepository) GetTriplesBySource(ctx context.Context, sourceDataID core.ID) ([]*core.GraphTriple, error) {
	var result []*core.GraphTriple
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTripleSourceKey(sourceDataID)
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

			triple, err := r.readTriple(tx, makeTripleKey(id))
			if err != nil {
				return err
			}
			if triple != nil {
				result = append(result, triple)
			}
		}
		return nil
	}, false)
	return result, err
}

// readTriple reads and unmarshals a triple by key.
// Returns nil (no error) if the key does not exist.
func (r *GraphRepository) readTriple(tx *badger.Txn, key []byte) (*core.GraphTriple, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var triple *core.GraphTriple
	err = item.Value(func(val []byte) error {
		var err error
		triple, err = storage.UnmarshalGraphTriple(val)
		return err
	})
	return triple, err
}
