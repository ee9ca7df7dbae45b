// Package dataset holds the format-agnostic table representation plus the
// shuffle, train/test split and batch iteration primitives used to prepare
// tabular data for model training. Decoding files into Tables lives in the
// codec package; nothing here touches the filesystem or logs.
package dataset

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// entropy is the process-wide source for unseeded shuffles and loader
// permutations. Tests swap it for a fixed-seed source.
var entropy = rand.New(rand.NewSource(time.Now().UnixNano()))

// Dataset tags a Table with an identity: a random id and the creation time.
// Both are assigned once in New and never change. A Dataset owns its Table
// exclusively; shuffling returns a reordered copy and leaves the source
// untouched, so splits stay reproducible against the pre-shuffle state.
type Dataset struct {
	table     *Table
	id        uuid.UUID
	createdAt time.Time
}

// New wraps a table with a fresh identity.
func New(table *Table) *Dataset {
	return &Dataset{
		table:     table,
		id:        uuid.New(),
		createdAt: time.Now(),
	}
}

func (d *Dataset) Table() *Table { return d.table }

func (d *Dataset) ID() uuid.UUID { return d.id }

func (d *Dataset) CreatedAt() time.Time { return d.createdAt }

// Height returns the row count of the underlying table.
func (d *Dataset) Height() int { return d.table.Height() }

// Shuffle returns a new Dataset whose rows are a uniformly random permutation
// of this one, drawn from the process-wide source.
func (d *Dataset) Shuffle() *Dataset {
	return d.shuffleWith(entropy)
}

// ShuffleSeeded is Shuffle with a fixed seed: the same seed over the same
// source rows always produces the same order.
func (d *Dataset) ShuffleSeeded(seed int64) *Dataset {
	return d.shuffleWith(rand.New(rand.NewSource(seed)))
}

func (d *Dataset) shuffleWith(r *rand.Rand) *Dataset {
	perm := identityPerm(d.table.Height())
	r.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return New(d.table.gather(perm))
}

// SplitFeatureTarget separates the target column from the features: it
// returns the table without that column and the column itself, both in the
// current row order.
func (d *Dataset) SplitFeatureTarget(targetColumn string) (*Table, *Series, error) {
	target, err := d.table.Column(targetColumn)
	if err != nil {
		return nil, nil, err
	}
	features, err := d.table.Drop(targetColumn)
	if err != nil {
		return nil, nil, err
	}
	return features, target, nil
}

func identityPerm(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
