package cmd

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mlkit-go/datasets/codec"
)

type Config struct {
	Mode         string
	Format       string
	Input        string
	Output       string
	Target       string
	TestRatio    float64
	Seed         int64
	BatchSize    int
	Shuffle      bool
	Epochs       int
	OutputFormat string
	PushURL      string
	Labels       string
	LabelMap     map[string]string
}

func (c *Config) Validate() error {
	if err := c.validateCommon(); err != nil {
		return err
	}

	// validate specific
	switch c.Mode {
	case "load":
		return c.validateLoad()
	case "convert":
		return c.validateConvert()
	case "batches":
		return c.validateBatches()
	default:
		return errors.Errorf("unrecognized mode %q", c.Mode)
	}
}

func (c *Config) validateCommon() error {
	if c.Input == "" {
		return errors.Errorf("an input file must be provided")
	}

	switch c.Format {
	case "csv", "json", "parquet", "":
	default:
		return errors.Errorf("unsupported format %q, must be one of [csv, json, parquet]", c.Format)
	}

	switch c.OutputFormat {
	case "text", "":
		c.OutputFormat = "text"
	case "json":
	default:
		return errors.Errorf("unsupported output format %q, must be one of [text, json]",
			c.OutputFormat)

	}

	return nil
}

func (c Config) validateLoad() error {
	if c.TestRatio < 0.0 || c.TestRatio > 1.0 {
		return errors.Errorf("test ratio %v must be within [0, 1]", c.TestRatio)
	}

	if c.Target == "" {
		return errors.Errorf("a target column must be provided")
	}

	return nil
}

func (c Config) validateConvert() error {
	if c.Output == "" {
		return errors.Errorf("an output file must be provided")
	}

	if c.Format == "" {
		return errors.Errorf("a target format must be provided")
	}

	return nil
}

func (c Config) validateBatches() error {
	if c.BatchSize <= 0 {
		return errors.Errorf("batch size must be set and larger than 0")
	}

	if c.Epochs <= 0 {
		return errors.Errorf("epochs must be set and larger than 0")
	}

	return nil
}

// inputFormat resolves the decode format: the explicit flag wins, otherwise
// the input extension decides. In convert mode the flag names the target
// format, so the input always goes by its extension.
func (c Config) inputFormat() (codec.Format, error) {
	if c.Format != "" && c.Mode != "convert" {
		return codec.Format(c.Format), nil
	}
	return codec.DetectFormat(c.Input)
}

func (c *Config) parseLabels() {
	result := make(map[string]string)
	pairs := strings.Split(c.Labels, ",")

	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2) // SplitN to make sure we only split on the first "="
		if len(kv) == 2 {
			result[kv[0]] = kv[1]
		}
	}

	c.LabelMap = result
}
