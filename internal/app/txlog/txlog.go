// Package txlog records the operations of one logical unit of work.
//
// A Log is created per coordinator call and is not shared between requests:
//
//	tx := txlog.New()
//	tx.Begin(ctx)
//	_ = tx.AddOperation("save task 42", undoSave)
//	if err != nil {
//	    _ = tx.Rollback(ctx)
//	    return err
//	}
//	return tx.Commit(ctx)
//
// Queued operations are recorded for logging only. Neither Commit nor
// Rollback invokes them, so mutations applied before a Rollback stay applied.
package txlog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/jsamuelsen11/go-task-service/internal/platform/logging"
)

// ErrInvalidState is returned when AddOperation, Commit, or Rollback is
// called on a Log that has no active transaction.
var ErrInvalidState = errors.New("txlog: no active transaction")

// ErrIrreversible is returned by Irreversible.
var ErrIrreversible = errors.New("txlog: operation cannot be reversed")

// Operation is a zero-argument action queued on a transaction.
type Operation func() error

// Irreversible is queued for steps that have no compensating action.
func Irreversible() error { return ErrIrreversible }

type queued struct {
	description string
	op          Operation
}

// Log tracks whether a transaction is active and which operations have been
// queued on it.
type Log struct {
	mu     sync.Mutex
	active bool
	ops    []queued
}

// New creates an inactive Log.
func New() *Log {
	return &Log{}
}

// Begin starts a transaction. Calling Begin on an active Log discards the
// operations queued so far; transactions do not nest.
func (l *Log) Begin(ctx context.Context) {
	l.mu.Lock()
	discarded := len(l.ops)
	l.active = true
	l.ops = nil
	l.mu.Unlock()

	if discarded > 0 {
		logging.FromContext(ctx).WarnContext(ctx, "transaction restarted, discarding queued operations",
			slog.String("operation", "txlog.Begin"),
			slog.Int("discarded", discarded),
		)
	}
}

// AddOperation queues op under a human-readable description.
// Returns ErrInvalidState if no transaction is active.
func (l *Log) AddOperation(description string, op Operation) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return ErrInvalidState
	}
	l.ops = append(l.ops, queued{description: description, op: op})
	return nil
}

// Commit ends the transaction and clears the queue.
// Returns ErrInvalidState if no transaction is active.
func (l *Log) Commit(ctx context.Context) error {
	l.mu.Lock()
	if !l.active {
		l.mu.Unlock()
		return ErrInvalidState
	}
	n := len(l.ops)
	l.reset()
	l.mu.Unlock()

	logging.FromContext(ctx).DebugContext(ctx, "transaction committed",
		slog.String("operation", "txlog.Commit"),
		slog.Int("operations", n),
	)
	return nil
}

// Rollback ends the transaction and clears the queue without running any
// queued operation. Returns ErrInvalidState if no transaction is active.
func (l *Log) Rollback(ctx context.Context) error {
	l.mu.Lock()
	if !l.active {
		l.mu.Unlock()
		return ErrInvalidState
	}
	ops := l.ops
	l.reset()
	l.mu.Unlock()

	descriptions := make([]string, len(ops))
	for i, q := range ops {
		descriptions[i] = q.description
	}

	logging.FromContext(ctx).WarnContext(ctx, "transaction rolled back",
		slog.String("operation", "txlog.Rollback"),
		slog.Int("discarded", len(ops)),
		slog.Any("operations", descriptions),
	)
	return nil
}

// Active reports whether a transaction is in progress.
func (l *Log) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// Len returns the number of queued operations.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ops)
}

func (l *Log) reset() {
	l.active = false
	l.ops = nil
}
