package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlkit-go/datasets/codec"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a dataset between file formats",
	Long: `Decodes the input file (format detected from its extension) and encodes it
to the output file in the format given by --format`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := globalConfig
		cfg.Mode = "convert"

		if err := cfg.Validate(); err != nil {
			fatal(err)
		}

		if err := runConvert(cfg); err != nil {
			fatal(err)
		}
	},
}

func initConvert() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.PersistentFlags().StringVarP(&globalConfig.Input,
		"input", "i", "", "Input file path or http(s) URL")
	convertCmd.PersistentFlags().StringVarP(&globalConfig.Output,
		"output", "o", "", "Output file path")
	convertCmd.PersistentFlags().StringVarP(&globalConfig.Format,
		"format", "f", "", "Output format, one of [csv, json, parquet]")
}

func runConvert(cfg Config) error {
	inputFormat, err := cfg.inputFormat()
	if err != nil {
		return err
	}

	table, err := codec.ReadFile(cfg.Input, inputFormat)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"input":   cfg.Input,
		"rows":    table.Height(),
		"columns": table.Width(),
		"from":    inputFormat,
		"to":      cfg.Format,
	}).Info("Converting dataset")

	if err := codec.WriteFile(cfg.Output, codec.Format(cfg.Format), table); err != nil {
		return err
	}

	infof("wrote %d rows to %s", table.Height(), cfg.Output)
	return nil
}
