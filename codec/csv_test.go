package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlkit-go/datasets/dataset"
)

const sampleCSV = `source_ip,score,attempts,blocked,action
10.0.0.1,0.25,3,true,allow
10.0.0.2,0.5,1,false,deny
10.0.0.3,0.75,7,true,allow
`

func TestCSVDecodeInfersTypes(t *testing.T) {
	c, err := ForFormat(FormatCSV)
	require.NoError(t, err)

	table, err := c.Decode(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, table.Height())
	require.Equal(t, 5, table.Width())

	tests := []struct {
		column string
		dtype  dataset.DType
	}{
		{"source_ip", dataset.DTypeString},
		{"score", dataset.DTypeFloat},
		{"attempts", dataset.DTypeInt},
		{"blocked", dataset.DTypeBool},
		{"action", dataset.DTypeString},
	}
	for _, test := range tests {
		col, err := table.Column(test.column)
		require.NoError(t, err)
		require.Equal(t, test.dtype, col.DType(), "column %q", test.column)
	}

	attempts, err := table.Column("attempts")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 7}, attempts.Ints())
}

func TestCSVDecodeHeaderOnly(t *testing.T) {
	c, _ := ForFormat(FormatCSV)

	table, err := c.Decode(strings.NewReader("a,b,c\n"))
	require.NoError(t, err)
	require.Equal(t, 0, table.Height())
	require.Equal(t, 3, table.Width())
}

func TestCSVDecodeFailures(t *testing.T) {
	c, _ := ForFormat(FormatCSV)

	t.Run("empty input", func(t *testing.T) {
		_, err := c.Decode(strings.NewReader(""))
		require.ErrorIs(t, err, ErrDecode)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := c.Decode(strings.NewReader("a,b\n1,2,3\n"))
		require.ErrorIs(t, err, ErrDecode)
	})
}

func TestCSVEncode(t *testing.T) {
	c, _ := ForFormat(FormatCSV)

	table, err := c.Decode(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, table))
	require.Equal(t, sampleCSV, buf.String())
}
