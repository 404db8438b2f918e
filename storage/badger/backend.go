package badger

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/storage"
)

// Backend wraps one BadgerDB instance. All repositories of a system share a
// single Backend.
type Backend struct {
	db     *badger.DB
	logger *slog.Logger
}

// badgerLogs routes badger's internal logging through slog.
type badgerLogs struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLogs)(nil)

func (l *badgerLogs) Errorf(msg string, args ...any)   { l.logger.Error(fmt.Sprintf(msg, args...)) }
func (l *badgerLogs) Warningf(msg string, args ...any) { l.logger.Warn(fmt.Sprintf(msg, args...)) }
func (l *badgerLogs) Infof(msg string, args ...any)    { l.logger.Info(fmt.Sprintf(msg, args...)) }
func (l *badgerLogs) Debugf(msg string, args ...any)   { l.logger.Debug(fmt.Sprintf(msg, args...)) }

// OpenBackend opens the database at filePath, creating the directory when
// missing. With inMemory set, filePath is ignored and nothing is persisted.
func OpenBackend(filePath string, inMemory bool) (*Backend, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := ensureDir(filePath); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(filePath)
	}

	logger := slog.Default()
	opts.Logger = &badgerLogs{logger: logger}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Backend{db: db, logger: logger}, nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// Close closes the underlying database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// IsClosed reports whether the database has been closed.
func (b *Backend) IsClosed() bool {
	return b.db.IsClosed()
}

// WithTx runs fn inside a badger transaction. The transaction is discarded
// when fn returns without committing; write transactions must Commit inside
// fn or through a wrapper like WithTransaction.
func (b *Backend) WithTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := b.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// WithTransaction runs fn inside a committed read-write transaction,
// satisfying the storage.Repository contract.
func (b *Backend) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return b.WithTx(func(tx *badger.Txn) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// FindSimilar scans all stored triples and returns those whose statement
// vector scores at least minSimilarity against the query vector, best first,
// at most limit entries. Vectors are assumed normalized, so the dot product
// is the cosine similarity. Triples without a vector are skipped.
func (b *Backend) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.TripleMatch, error) {
	var matches []*core.TripleMatch

	err := b.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		// The trailing ":" keeps the topic and source index keys out of the
		// scan; only primary triple records share this prefix.
		opts.Prefix = []byte(triplePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var triple *core.GraphTriple
			err := iter.Item().Value(func(val []byte) error {
				var err error
				triple, err = storage.UnmarshalGraphTriple(val)
				return err
			})
			if err != nil {
				return err
			}
			if triple == nil || len(triple.Vector) == 0 {
				continue
			}

			if score := dotProduct(vector, triple.Vector); score >= minSimilarity {
				matches = append(matches, &core.TripleMatch{Triple: triple, Score: score})
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(matches, func(a, b *core.TripleMatch) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func dotProduct(a, b []float32) float32 {
	var sum float32
	for i := 0; i < min(len(a), len(b)); i++ {
		sum += a[i] * b[i]
	}
	return sum
}
