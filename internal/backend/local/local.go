// Package local implements task.Repository on an embedded BadgerDB,
// giving the CLI a durable store without any external service.
//
// Layout: tasks are stored under "t/<seq>" where seq is a monotonic
// 8-byte big-endian counter, so a prefix scan yields creation order.
// A second index "i/<id>" maps the task id to its seq key.
package local

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"todoq/internal/task"
)

const (
	taskPrefix = "t/"
	idPrefix   = "i/"
	seqKey     = "!seq"

	seqBandwidth = 64
)

// Store is a durable task.Repository backed by BadgerDB.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence
	now func() time.Time
}

// Open opens (or creates) a store in dir. logger, if non-nil, receives
// BadgerDB's internal logging at slog levels.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	return open(withLogger(badger.DefaultOptions(dir), logger))
}

// OpenInMemory opens a store with no disk persistence, for tests.
func OpenInMemory(logger *slog.Logger) (*Store, error) {
	return open(withLogger(badger.DefaultOptions("").WithInMemory(true), logger))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	seq, err := db.GetSequence([]byte(seqKey), seqBandwidth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("open task sequence: %w", err)
	}
	return &Store{db: db, seq: seq, now: time.Now}, nil
}

func withLogger(opts badger.Options, logger *slog.Logger) badger.Options {
	if logger == nil {
		return opts.WithLogger(nil)
	}
	return opts.WithLogger(badgerLogger{logger})
}

// Close releases the id sequence and closes the database.
func (s *Store) Close() error {
	if err := s.seq.Release(); err != nil {
		s.db.Close()
		return fmt.Errorf("release task sequence: %w", err)
	}
	return s.db.Close()
}

// GetAll returns all tasks in creation order.
func (s *Store) GetAll(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []task.Task
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(taskPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var t task.Task
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &t)
			})
			if err != nil {
				return fmt.Errorf("decode task at %q: %w", it.Item().Key(), err)
			}
			out = append(out, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a new task with a fresh uuid and current timestamps.
func (s *Store) Create(ctx context.Context, in task.CreateInput) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	n, err := s.seq.Next()
	if err != nil {
		return task.Task{}, fmt.Errorf("next task id: %w", err)
	}
	now := s.now().UTC()
	t := task.Task{
		ID:        uuid.NewString(),
		Title:     in.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	val, err := json.Marshal(t)
	if err != nil {
		return task.Task{}, fmt.Errorf("encode task: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(taskKey(n), val); err != nil {
			return err
		}
		return txn.Set(idKey(t.ID), seqBytes(n))
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("store task: %w", err)
	}
	return t, nil
}

// Update applies p to the task with the given id.
func (s *Store) Update(ctx context.Context, id string, p task.Patch) (task.Task, error) {
	if err := ctx.Err(); err != nil {
		return task.Task{}, err
	}
	var t task.Task
	err := s.db.Update(func(txn *badger.Txn) error {
		key, err := lookupSeq(txn, id)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return fmt.Errorf("load task %s: %w", id, err)
		}
		err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &t)
		})
		if err != nil {
			return fmt.Errorf("decode task %s: %w", id, err)
		}
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		t.UpdatedAt = s.now().UTC()
		val, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode task %s: %w", id, err)
		}
		return txn.Set(key, val)
	})
	if err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key, err := lookupSeq(txn, id)
		if err != nil {
			if errors.Is(err, task.ErrNotFound) {
				return nil
			}
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		return txn.Delete(idKey(id))
	})
}

var errMissing = fmt.Errorf("lookup: %w", task.ErrNotFound)

// lookupSeq resolves a task id to its ordered storage key.
func lookupSeq(txn *badger.Txn, id string) ([]byte, error) {
	item, err := txn.Get(idKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errMissing
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", id, err)
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", id, err)
	}
	return append([]byte(taskPrefix), raw...), nil
}

func taskKey(n uint64) []byte {
	return append([]byte(taskPrefix), seqBytes(n)...)
}

func idKey(id string) []byte {
	return append([]byte(idPrefix), id...)
}

func seqBytes(n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return b[:]
}

// badgerLogger adapts slog to BadgerDB's Logger interface.
type badgerLogger struct {
	log *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Info(fmt.Sprintf(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
