package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlkit-go/datasets/dataset"
)

const sampleJSON = `[
  {"id": "6f1b9c3e-8d42-4f6a-9b1e-2c7d5a0e4f11", "timestamp": "2024-03-01T08:12:44Z",
   "source_ip": "10.0.0.12", "destination_ip": "172.16.4.9", "action": "allow", "protocol": "tcp"},
  {"id": "a4e2d7c1-5b38-49f0-8a6d-913c2e7f5b02", "timestamp": "2024-03-01T08:13:02Z",
   "source_ip": "10.0.0.44", "destination_ip": "172.16.4.9", "action": "deny", "protocol": "tcp"}
]`

func TestJSONDecode(t *testing.T) {
	c, err := ForFormat(FormatJSON)
	require.NoError(t, err)

	table, err := c.Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, 2, table.Height())
	require.Equal(t, securityColumns, table.ColumnNames())

	action, err := table.Column("action")
	require.NoError(t, err)
	require.Equal(t, dataset.DTypeString, action.DType())
	require.Equal(t, []string{"allow", "deny"}, action.Strings())
}

func TestJSONDecodeEmptyArray(t *testing.T) {
	c, _ := ForFormat(FormatJSON)

	table, err := c.Decode(strings.NewReader("[]"))
	require.NoError(t, err)
	require.Equal(t, 0, table.Height())
	require.Equal(t, 6, table.Width())
}

func TestJSONDecodeMalformed(t *testing.T) {
	c, _ := ForFormat(FormatJSON)

	_, err := c.Decode(strings.NewReader(`{"not": "an array"}`))
	require.ErrorIs(t, err, ErrDecode)
}

func TestJSONRoundTrip(t *testing.T) {
	c, _ := ForFormat(FormatJSON)

	table, err := c.Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, table))

	again, err := c.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, table, again)
}

func TestJSONEncodeRequiresSchema(t *testing.T) {
	c, _ := ForFormat(FormatJSON)

	table, err := dataset.NewTable(dataset.NewStringSeries("other", []string{"x"}))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = c.Encode(&buf, table)
	require.ErrorIs(t, err, ErrEncode)
}
