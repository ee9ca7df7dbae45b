package codec

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/dataset"
)

// SecurityRecord is the fixed schema a JSON record set maps onto when no
// richer schema is supplied: one object per row, six string columns.
type SecurityRecord struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	SourceIP      string `json:"source_ip"`
	DestinationIP string `json:"destination_ip"`
	Action        string `json:"action"`
	Protocol      string `json:"protocol"`
}

var securityColumns = []string{"id", "timestamp", "source_ip", "destination_ip", "action", "protocol"}

type jsonCodec struct{}

func (jsonCodec) Format() Format { return FormatJSON }

func (jsonCodec) Decode(r io.Reader) (*dataset.Table, error) {
	var records []SecurityRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrapf(ErrDecode, "json: %s", err)
	}

	cols := make(map[string][]string, len(securityColumns))
	for _, rec := range records {
		cols["id"] = append(cols["id"], rec.ID)
		cols["timestamp"] = append(cols["timestamp"], rec.Timestamp)
		cols["source_ip"] = append(cols["source_ip"], rec.SourceIP)
		cols["destination_ip"] = append(cols["destination_ip"], rec.DestinationIP)
		cols["action"] = append(cols["action"], rec.Action)
		cols["protocol"] = append(cols["protocol"], rec.Protocol)
	}

	series := make([]*dataset.Series, len(securityColumns))
	for i, name := range securityColumns {
		values := cols[name]
		if values == nil {
			values = []string{}
		}
		series[i] = dataset.NewStringSeries(name, values)
	}
	table, err := dataset.NewTable(series...)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "json: %s", err)
	}
	return table, nil
}

// Encode writes the table back as an array of records. The table must carry
// the six security columns as strings.
func (jsonCodec) Encode(w io.Writer, t *dataset.Table) error {
	cols := make([]*dataset.Series, len(securityColumns))
	for i, name := range securityColumns {
		col, err := t.Column(name)
		if err != nil {
			return errors.Wrapf(ErrEncode, "json: %s", err)
		}
		if col.DType() != dataset.DTypeString {
			return errors.Wrapf(ErrEncode, "json: column %q must be a string column, got %s",
				name, col.DType())
		}
		cols[i] = col
	}

	records := make([]SecurityRecord, t.Height())
	for i := range records {
		records[i] = SecurityRecord{
			ID:            cols[0].Format(i),
			Timestamp:     cols[1].Format(i),
			SourceIP:      cols[2].Format(i),
			DestinationIP: cols[3].Format(i),
			Action:        cols[4].Format(i),
			Protocol:      cols[5].Format(i),
		}
	}
	if err := json.NewEncoder(w).Encode(records); err != nil {
		return errors.Wrapf(ErrEncode, "json: %s", err)
	}
	return nil
}
