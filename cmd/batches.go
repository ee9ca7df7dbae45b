package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlkit-go/datasets/codec"
	"github.com/mlkit-go/datasets/dataset"
)

var batchesCmd = &cobra.Command{
	Use:   "batches",
	Short: "Iterate a dataset in batches",
	Long: `Loads a dataset and streams it through a batch loader for the requested
number of epochs. Each epoch is one full pass over the rows; the loader is
explicitly restarted between epochs and every pass gets its own session id`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := globalConfig
		cfg.Mode = "batches"

		if err := cfg.Validate(); err != nil {
			fatal(err)
		}

		if err := runBatches(cfg); err != nil {
			fatal(err)
		}
	},
}

func initBatches() {
	rootCmd.AddCommand(batchesCmd)
	batchesCmd.PersistentFlags().StringVarP(&globalConfig.Format,
		"format", "f", "csv", "Input dataset format, one of [csv, json, parquet]")
	batchesCmd.PersistentFlags().StringVarP(&globalConfig.Input,
		"input", "i", "data/security_dataset.csv", "Input file path or http(s) URL")
	batchesCmd.PersistentFlags().IntVarP(&globalConfig.BatchSize,
		"batchSize", "b", 32, "Number of rows per batch")
	batchesCmd.PersistentFlags().BoolVarP(&globalConfig.Shuffle,
		"shuffle", "s", true, "Reshuffle the row order at the start of every epoch")
	batchesCmd.PersistentFlags().IntVarP(&globalConfig.Epochs,
		"epochs", "e", 1, "Number of full passes over the dataset")
}

func runBatches(cfg Config) error {
	format, err := cfg.inputFormat()
	if err != nil {
		return err
	}

	table, err := codec.ReadFile(cfg.Input, format)
	if err != nil {
		return err
	}

	ds := dataset.New(table)
	loader, err := dataset.NewBatchLoader(ds, cfg.BatchSize, cfg.Shuffle)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"rows":       ds.Height(),
		"batch_size": loader.BatchSize(),
		"batches":    loader.Batches(),
		"epochs":     cfg.Epochs,
		"shuffle":    cfg.Shuffle,
	}).Info("Starting batch iteration")

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		if epoch > 0 {
			loader.Restart()
		}

		rows := 0
		for batch, ok := loader.Next(); ok; batch, ok = loader.Next() {
			rows += batch.Height()
			log.WithFields(log.Fields{
				"session": loader.SessionID(),
				"rows":    batch.Height(),
			}).Debug("Produced batch")
		}

		log.WithFields(log.Fields{
			"epoch":   epoch,
			"session": loader.SessionID(),
			"rows":    rows,
		}).Info("Epoch complete")
	}

	return nil
}
