package dataset

import "github.com/pkg/errors"

// Table is the uniform in-memory representation every codec decodes into:
// an ordered set of named columns of identical length. A Table is never
// mutated after construction; Drop, Slice and Gather all build new Tables.
type Table struct {
	cols   []*Series
	byName map[string]int
}

// NewTable assembles a Table from columns. All columns must have the same
// length and names must be unique.
func NewTable(cols ...*Series) (*Table, error) {
	t := &Table{cols: cols, byName: make(map[string]int, len(cols))}
	for i, col := range cols {
		if _, dup := t.byName[col.Name()]; dup {
			return nil, errors.Wrapf(ErrInvalidArgument, "duplicate column %q", col.Name())
		}
		t.byName[col.Name()] = i
		if col.Len() != cols[0].Len() {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"column %q has %d rows, expected %d", col.Name(), col.Len(), cols[0].Len())
		}
	}
	return t, nil
}

func newTableUnchecked(cols []*Series) *Table {
	t := &Table{cols: cols, byName: make(map[string]int, len(cols))}
	for i, col := range cols {
		t.byName[col.Name()] = i
	}
	return t
}

// Height returns the row count.
func (t *Table) Height() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the column count.
func (t *Table) Width() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name()
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (*Series, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "column %q", name)
	}
	return t.cols[i], nil
}

// Drop returns a new Table without the named column. The remaining columns
// are shared, which is safe because Series storage is immutable.
func (t *Table) Drop(name string) (*Table, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "column %q", name)
	}
	kept := make([]*Series, 0, len(t.cols)-1)
	kept = append(kept, t.cols[:i]...)
	kept = append(kept, t.cols[i+1:]...)
	return newTableUnchecked(kept), nil
}

// Slice returns a new Table restricted to rows [start, start+length). The
// result owns its row storage, so it never aliases the source.
func (t *Table) Slice(start, length int) (*Table, error) {
	if start < 0 || length < 0 || start+length > t.Height() {
		return nil, errors.Wrapf(ErrOutOfRange, "slice [%d, %d) of table with %d rows",
			start, start+length, t.Height())
	}
	return t.gather(contiguous(start, length)), nil
}

// Gather returns a new Table whose rows are taken from the given indices, in
// order. Indices may repeat; each must be within [0, Height()).
func (t *Table) Gather(indices []int) (*Table, error) {
	n := t.Height()
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, errors.Wrapf(ErrOutOfRange, "row index %d of table with %d rows", idx, n)
		}
	}
	return t.gather(indices), nil
}

func (t *Table) gather(indices []int) *Table {
	cols := make([]*Series, len(t.cols))
	for i, col := range t.cols {
		cols[i] = col.gather(indices)
	}
	return newTableUnchecked(cols)
}
