package dataset

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BatchLoader iterates a Dataset in fixed-size row batches over an index
// permutation. One full pass from cursor 0 to exhaustion is a session,
// identified by a session id. The loader never restarts on its own: after
// the pass completes Next keeps returning false until Restart is called,
// which re-permutes the indices and mints a new session id. Epoch boundaries
// are therefore explicit and observable.
//
// A loader is single-owner state; concurrent Next calls on one instance must
// be serialized by the caller.
type BatchLoader struct {
	ds        *Dataset
	batchSize int
	shuffle   bool
	perm      []int
	cursor    int
	sessionID uuid.UUID
}

// NewBatchLoader creates a loader over ds. With shuffle set, each session
// visits the rows in a fresh random order; otherwise in table order.
func NewBatchLoader(ds *Dataset, batchSize int, shuffle bool) (*BatchLoader, error) {
	if batchSize <= 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "batch size must be larger than 0")
	}
	l := &BatchLoader{ds: ds, batchSize: batchSize, shuffle: shuffle}
	l.begin()
	return l, nil
}

func (l *BatchLoader) begin() {
	l.perm = identityPerm(l.ds.Height())
	if l.shuffle {
		entropy.Shuffle(len(l.perm), func(i, j int) {
			l.perm[i], l.perm[j] = l.perm[j], l.perm[i]
		})
	}
	l.cursor = 0
	l.sessionID = uuid.New()
}

// Next returns the next batch of the current session, or (nil, false) once
// the session is exhausted. Every row index appears in exactly one batch per
// session; the final batch may be short when the row count is not a multiple
// of the batch size.
func (l *BatchLoader) Next() (*Table, bool) {
	if l.cursor >= len(l.perm) {
		return nil, false
	}
	end := l.cursor + l.batchSize
	if end > len(l.perm) {
		end = len(l.perm)
	}
	batch := l.ds.table.gather(l.perm[l.cursor:end])
	l.cursor = end
	return batch, true
}

// Restart begins a new session: the permutation is regenerated (reshuffled if
// the loader shuffles), the cursor resets and a new session id is minted.
func (l *BatchLoader) Restart() {
	l.begin()
}

// Exhausted reports whether the current session has produced all its batches.
func (l *BatchLoader) Exhausted() bool { return l.cursor >= len(l.perm) }

// SessionID identifies the current pass. It changes on every Restart.
func (l *BatchLoader) SessionID() uuid.UUID { return l.sessionID }

// BatchSize returns the configured batch size.
func (l *BatchLoader) BatchSize() int { return l.batchSize }

// Batches returns the number of batches in one full session.
func (l *BatchLoader) Batches() int {
	return (len(l.perm) + l.batchSize - 1) / l.batchSize
}
