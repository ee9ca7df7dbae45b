package dataset

import (
	"strconv"

	"github.com/pkg/errors"
)

// DType identifies the scalar type stored by a Series.
type DType string

const (
	DTypeString DType = "string"
	DTypeInt    DType = "int64"
	DTypeFloat  DType = "float64"
	DTypeBool   DType = "bool"
)

// Series is a named, homogeneous column. Exactly one of the backing slices is
// populated, selected by dtype. The storage is never mutated after
// construction; accessors hand out copies so callers cannot reach in either.
type Series struct {
	name  string
	dtype DType

	strs   []string
	ints   []int64
	floats []float64
	bools  []bool
}

func NewStringSeries(name string, values []string) *Series {
	return &Series{name: name, dtype: DTypeString, strs: append([]string(nil), values...)}
}

func NewIntSeries(name string, values []int64) *Series {
	return &Series{name: name, dtype: DTypeInt, ints: append([]int64(nil), values...)}
}

func NewFloatSeries(name string, values []float64) *Series {
	return &Series{name: name, dtype: DTypeFloat, floats: append([]float64(nil), values...)}
}

func NewBoolSeries(name string, values []bool) *Series {
	return &Series{name: name, dtype: DTypeBool, bools: append([]bool(nil), values...)}
}

func (s *Series) Name() string { return s.name }

func (s *Series) DType() DType { return s.dtype }

func (s *Series) Len() int {
	switch s.dtype {
	case DTypeString:
		return len(s.strs)
	case DTypeInt:
		return len(s.ints)
	case DTypeFloat:
		return len(s.floats)
	default:
		return len(s.bools)
	}
}

// Strings returns a copy of the backing values. Nil if the dtype differs.
func (s *Series) Strings() []string { return append([]string(nil), s.strs...) }

func (s *Series) Ints() []int64 { return append([]int64(nil), s.ints...) }

func (s *Series) Floats() []float64 { return append([]float64(nil), s.floats...) }

func (s *Series) Bools() []bool { return append([]bool(nil), s.bools...) }

// Value returns the i-th element boxed as any.
func (s *Series) Value(i int) any {
	switch s.dtype {
	case DTypeString:
		return s.strs[i]
	case DTypeInt:
		return s.ints[i]
	case DTypeFloat:
		return s.floats[i]
	default:
		return s.bools[i]
	}
}

// Format renders the i-th element as a string, e.g. for CSV encoding.
func (s *Series) Format(i int) string {
	switch s.dtype {
	case DTypeString:
		return s.strs[i]
	case DTypeInt:
		return strconv.FormatInt(s.ints[i], 10)
	case DTypeFloat:
		return strconv.FormatFloat(s.floats[i], 'g', -1, 64)
	default:
		return strconv.FormatBool(s.bools[i])
	}
}

// Slice returns a new Series restricted to rows [start, start+length). The
// result owns its storage.
func (s *Series) Slice(start, length int) (*Series, error) {
	if start < 0 || length < 0 || start+length > s.Len() {
		return nil, errors.Wrapf(ErrOutOfRange, "slice [%d, %d) of series %q with %d rows",
			start, start+length, s.name, s.Len())
	}
	return s.gather(contiguous(start, length)), nil
}

// gather builds a new Series from rows at the given indices. Indices must be
// in bounds; validation happens at the Table level.
func (s *Series) gather(indices []int) *Series {
	out := &Series{name: s.name, dtype: s.dtype}
	switch s.dtype {
	case DTypeString:
		out.strs = make([]string, len(indices))
		for i, idx := range indices {
			out.strs[i] = s.strs[idx]
		}
	case DTypeInt:
		out.ints = make([]int64, len(indices))
		for i, idx := range indices {
			out.ints[i] = s.ints[idx]
		}
	case DTypeFloat:
		out.floats = make([]float64, len(indices))
		for i, idx := range indices {
			out.floats[i] = s.floats[idx]
		}
	default:
		out.bools = make([]bool, len(indices))
		for i, idx := range indices {
			out.bools[i] = s.bools[idx]
		}
	}
	return out
}

func contiguous(start, length int) []int {
	indices := make([]int, length)
	for i := range indices {
		indices[i] = start + i
	}
	return indices
}
