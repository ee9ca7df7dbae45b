package codec

import (
	"bytes"
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/dataset"
)

type parquetCodec struct{}

func (parquetCodec) Format() Format { return FormatParquet }

// Decode buffers the stream (parquet needs random access to its footer) and
// maps the arrow columns onto Series. Narrow numeric types are widened to the
// table's int64/float64 storage; nulls become zero values.
func (parquetCodec) Decode(r io.Reader) (*dataset.Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "parquet: %s", err)
	}

	mem := memory.DefaultAllocator
	arrowTable, err := pqarrow.ReadTable(context.Background(), bytes.NewReader(buf),
		parquet.NewReaderProperties(mem), pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "parquet: %s", err)
	}
	defer arrowTable.Release()

	cols := make([]*dataset.Series, arrowTable.NumCols())
	for i := range cols {
		name := arrowTable.Schema().Field(i).Name
		col, err := seriesFromChunks(name, arrowTable.Column(i).Data().Chunks())
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	table, err := dataset.NewTable(cols...)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "parquet: %s", err)
	}
	return table, nil
}

func seriesFromChunks(name string, chunks []arrow.Array) (*dataset.Series, error) {
	if len(chunks) == 0 {
		return dataset.NewStringSeries(name, nil), nil
	}
	switch chunks[0].(type) {
	case *array.String, *array.LargeString:
		var values []string
		for _, chunk := range chunks {
			for i := 0; i < chunk.Len(); i++ {
				values = append(values, chunk.ValueStr(i))
			}
		}
		return dataset.NewStringSeries(name, values), nil
	case *array.Int64, *array.Int32:
		var values []int64
		for _, chunk := range chunks {
			for i := 0; i < chunk.Len(); i++ {
				if chunk.IsNull(i) {
					values = append(values, 0)
					continue
				}
				switch arr := chunk.(type) {
				case *array.Int64:
					values = append(values, arr.Value(i))
				case *array.Int32:
					values = append(values, int64(arr.Value(i)))
				}
			}
		}
		return dataset.NewIntSeries(name, values), nil
	case *array.Float64, *array.Float32:
		var values []float64
		for _, chunk := range chunks {
			for i := 0; i < chunk.Len(); i++ {
				if chunk.IsNull(i) {
					values = append(values, 0)
					continue
				}
				switch arr := chunk.(type) {
				case *array.Float64:
					values = append(values, arr.Value(i))
				case *array.Float32:
					values = append(values, float64(arr.Value(i)))
				}
			}
		}
		return dataset.NewFloatSeries(name, values), nil
	case *array.Boolean:
		var values []bool
		for _, chunk := range chunks {
			arr := chunk.(*array.Boolean)
			for i := 0; i < arr.Len(); i++ {
				values = append(values, !arr.IsNull(i) && arr.Value(i))
			}
		}
		return dataset.NewBoolSeries(name, values), nil
	default:
		return nil, errors.Wrapf(ErrDecode, "parquet: unsupported column type %s for %q",
			chunks[0].DataType(), name)
	}
}

func (parquetCodec) Encode(w io.Writer, t *dataset.Table) error {
	mem := memory.DefaultAllocator
	schema := arrowSchema(t)

	builder := array.NewRecordBuilder(mem, schema)
	defer builder.Release()

	for i, name := range t.ColumnNames() {
		col, err := t.Column(name)
		if err != nil {
			return errors.Wrapf(ErrEncode, "parquet: %s", err)
		}
		switch col.DType() {
		case dataset.DTypeString:
			builder.Field(i).(*array.StringBuilder).AppendValues(col.Strings(), nil)
		case dataset.DTypeInt:
			builder.Field(i).(*array.Int64Builder).AppendValues(col.Ints(), nil)
		case dataset.DTypeFloat:
			builder.Field(i).(*array.Float64Builder).AppendValues(col.Floats(), nil)
		case dataset.DTypeBool:
			builder.Field(i).(*array.BooleanBuilder).AppendValues(col.Bools(), nil)
		}
	}

	rec := builder.NewRecord()
	defer rec.Release()
	arrowTable := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer arrowTable.Release()

	chunkSize := int64(t.Height())
	if chunkSize == 0 {
		chunkSize = 1
	}
	if err := pqarrow.WriteTable(arrowTable, w, chunkSize,
		parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()); err != nil {
		return errors.Wrapf(ErrEncode, "parquet: %s", err)
	}
	return nil
}

func arrowSchema(t *dataset.Table) *arrow.Schema {
	fields := make([]arrow.Field, 0, t.Width())
	for _, name := range t.ColumnNames() {
		col, _ := t.Column(name)
		var dt arrow.DataType
		switch col.DType() {
		case dataset.DTypeInt:
			dt = arrow.PrimitiveTypes.Int64
		case dataset.DTypeFloat:
			dt = arrow.PrimitiveTypes.Float64
		case dataset.DTypeBool:
			dt = arrow.FixedWidthTypes.Boolean
		default:
			dt = arrow.BinaryTypes.String
		}
		fields = append(fields, arrow.Field{Name: name, Type: dt})
	}
	return arrow.NewSchema(fields, nil)
}
