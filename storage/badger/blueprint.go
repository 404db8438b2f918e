package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/storage"
)

// BlueprintRepository implements storage.BlueprintRepository for BadgerDB.
type BlueprintRepository struct {
	backend *Backend
}

var _ storage.BlueprintRepository = (*BlueprintRepository)(nil)

// NewBlueprintRepository creates a new BlueprintRepository.
func NewBlueprintRepository(backend *Backend) (*BlueprintRepository, error) {
	return &BlueprintRepository{backend: backend}, nil
}

// Close is a no-op; the shared backend owns the database handle.
func (r *BlueprintRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *BlueprintRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddBlueprints adds one or more blueprints to storage.
func (r *BlueprintRepository) AddBlueprints(ctx context.Context, blueprints ...*core.Blueprint) ([]*core.Blueprint, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, blueprint := range blueprints {
			// Content-based ID over the source set: regenerating a blueprint
			// for the same sources lands on the same key.
			if blueprint.Id == 0 {
				blueprint.Id = core.IDFromContent(blueprint.SourceSetKey())
			}

			blueprint.InsertedAt = time.Now().UTC()
			blueprint.UpdatedAt = blueprint.InsertedAt

			// Store primary record
			key := makeBlueprintKey(blueprint.Id)
			value := storage.MarshalBlueprint(blueprint)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index
			topicKey := makeTopicKey(blueprintTopicPrefix, blueprint.TopicName, blueprint.Id)
			if err := tx.Set(topicKey, storage.MarshalID(blueprint.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return blueprints, err
}

// UpdateBlueprints updates existing blueprints.
func (r *BlueprintRepository) UpdateBlueprints(ctx context.Context, blueprints ...*core.Blueprint) ([]*core.Blueprint, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, blueprint := range blueprints {
			key := makeBlueprintKey(blueprint.Id)

			old, err := r.readBlueprint(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			blueprint.InsertedAt = old.InsertedAt
			blueprint.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalBlueprint(blueprint)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update topic index if the topic changed
			if old.TopicName != blueprint.TopicName {
				oldTopicKey := makeTopicKey(blueprintTopicPrefix, old.TopicName, old.Id)
				if err := tx.Delete(oldTopicKey); err != nil {
					return err
				}
				newTopicKey := makeTopicKey(blueprintTopicPrefix, blueprint.TopicName, blueprint.Id)
				if err := tx.Set(newTopicKey, storage.MarshalID(blueprint.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return blueprints, err
}

// DeleteBlueprints removes blueprints by their IDs.
func (r *BlueprintRepository) DeleteBlueprints(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeBlueprintKey(id)

			blueprint, err := r.readBlueprint(tx, key)
			if err != nil {
				return err
			}
			if blueprint == nil {
				return storage.ErrNotFound
			}

			// Delete from topic index
			topicKey := makeTopicKey(blueprintTopicPrefix, blueprint.TopicName, blueprint.Id)
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

// GetBlueprint retrieves a single blueprint by ID.
func (r *BlueprintRepository) GetBlueprint(ctx context.Context, id core.ID) (*core.Blueprint, error) {
	var result *core.Blueprint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBlueprintKey(id)
		var err error
		result, err = r.readBlueprint(tx, key)
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

// GetBlueprintsByTopic retrieves all blueprints for a topic.
func (r *BlueprintRepository) GetBlueprintsByTopic(ctx context.Context, topicName string) ([]*core.Blueprint, error) {
	var result []*core.Blueprint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialTopicKey(blueprintTopicPrefix, topicName)
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

			blueprint, err := r.readBlueprint(tx, makeBlueprintKey(id))
			if err != nil {
				return err
			}
			if blueprint != nil {
				result = append(result, blueprint)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetLatestBlueprint retrieves the most recently updated blueprint for a topic.
func (r *BlueprintRepository) GetLatestBlueprint(ctx context.Context, topicName string) (*core.Blueprint, error) {
	blueprints, err := r.GetBlueprintsByTopic(ctx, topicName)
	if err != nil {
		return nil, err
	}
	if len(blueprints) == 0 {
		return nil, storage.ErrNotFound
	}

	latest := blueprints[0]
	for _, blueprint := range blueprints[1:] {
		if blueprint.UpdatedAt.After(latest.UpdatedAt) {
			latest = blueprint
		}
	}
	return latest, nil
}

// readBlueprint reads and unmarshals a blueprint by key.
// Returns nil (no error) if the key does not exist.
func (r *BlueprintRepository) readBlueprint(tx *badger.Txn, key []byte) (*core.Blueprint, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var blueprint *core.Blueprint
	err = item.Value(func(val []byte) error {
		var err error
		blueprint, err = storage.UnmarshalBlueprint(val)
		return err
	})
	return blueprint, err
}
