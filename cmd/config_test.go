package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlkit-go/datasets/codec"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Mode:      "load",
		Format:    "csv",
		Input:     "data/security_dataset.csv",
		Target:    "target",
		TestRatio: 0.2,
	}

	t.Run("valid load config", func(t *testing.T) {
		cfg := valid
		require.NoError(t, cfg.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing input", func(c *Config) { c.Input = "" }},
		{"unknown format", func(c *Config) { c.Format = "xlsx" }},
		{"unknown output format", func(c *Config) { c.OutputFormat = "yaml" }},
		{"unknown mode", func(c *Config) { c.Mode = "train" }},
		{"negative test ratio", func(c *Config) { c.TestRatio = -0.5 }},
		{"test ratio above 1", func(c *Config) { c.TestRatio = 1.5 }},
		{"missing target", func(c *Config) { c.Target = "" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid
			test.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	t.Run("convert requires output and format", func(t *testing.T) {
		cfg := Config{Mode: "convert", Input: "in.csv"}
		require.Error(t, cfg.Validate())
		cfg.Output = "out.parquet"
		require.Error(t, cfg.Validate())
		cfg.Format = "parquet"
		require.NoError(t, cfg.Validate())
	})

	t.Run("batches requires positive sizes", func(t *testing.T) {
		cfg := Config{Mode: "batches", Input: "in.csv", BatchSize: 0, Epochs: 1}
		require.Error(t, cfg.Validate())
		cfg.BatchSize = 32
		cfg.Epochs = 0
		require.Error(t, cfg.Validate())
		cfg.Epochs = 2
		require.NoError(t, cfg.Validate())
	})
}

func TestInputFormat(t *testing.T) {
	tests := []struct {
		mode   string
		format string
		input  string
		want   codec.Format
	}{
		{"load", "parquet", "data.csv", codec.FormatParquet},
		{"load", "", "data.csv", codec.FormatCSV},
		{"convert", "parquet", "data.csv", codec.FormatCSV},
		{"batches", "json", "records.json", codec.FormatJSON},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("mode=%s format=%q input=%s", test.mode, test.format, test.input), func(t *testing.T) {
			cfg := Config{Mode: test.mode, Format: test.format, Input: test.input}
			got, err := cfg.inputFormat()
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestParseLabels(t *testing.T) {
	cfg := Config{Labels: "run=nightly,branch=main,odd"}
	cfg.parseLabels()

	require.Equal(t, map[string]string{"run": "nightly", "branch": "main"}, cfg.LabelMap)
}
