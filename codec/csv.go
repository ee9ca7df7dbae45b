package codec

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/dataset"
)

type csvCodec struct{}

func (csvCodec) Format() Format { return FormatCSV }

// Decode reads a header row plus records and infers a dtype per column:
// int64 if every cell parses as an integer, else float64, else bool, else
// string.
func (csvCodec) Decode(r io.Reader) (*dataset.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "csv: %s", err)
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrDecode, "csv: missing header row")
	}

	header := records[0]
	rows := records[1:]
	cols := make([]*dataset.Series, len(header))
	for i, name := range header {
		raw := make([]string, len(rows))
		for j, row := range rows {
			raw[j] = row[i]
		}
		cols[i] = inferSeries(name, raw)
	}

	table, err := dataset.NewTable(cols...)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "csv: %s", err)
	}
	return table, nil
}

func (csvCodec) Encode(w io.Writer, t *dataset.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return errors.Wrapf(ErrEncode, "csv: %s", err)
	}

	cols := make([]*dataset.Series, 0, t.Width())
	for _, name := range t.ColumnNames() {
		col, err := t.Column(name)
		if err != nil {
			return errors.Wrapf(ErrEncode, "csv: %s", err)
		}
		cols = append(cols, col)
	}

	row := make([]string, t.Width())
	for i := 0; i < t.Height(); i++ {
		for j, col := range cols {
			row[j] = col.Format(i)
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(ErrEncode, "csv: %s", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrapf(ErrEncode, "csv: %s", err)
	}
	return nil
}

// inferSeries picks the narrowest dtype every raw cell parses as.
func inferSeries(name string, raw []string) *dataset.Series {
	if ints, ok := parseInts(raw); ok {
		return dataset.NewIntSeries(name, ints)
	}
	if floats, ok := parseFloats(raw); ok {
		return dataset.NewFloatSeries(name, floats)
	}
	if bools, ok := parseBools(raw); ok {
		return dataset.NewBoolSeries(name, bools)
	}
	return dataset.NewStringSeries(name, raw)
}

func parseInts(raw []string) ([]int64, bool) {
	out := make([]int64, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, len(raw) > 0
}

func parseFloats(raw []string) ([]float64, bool) {
	out := make([]float64, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, len(raw) > 0
}

func parseBools(raw []string) ([]bool, bool) {
	out := make([]bool, len(raw))
	for i, cell := range raw {
		v, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, len(raw) > 0
}
