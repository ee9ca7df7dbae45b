package cmd

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	log "github.com/sirupsen/logrus"
)

// LoadMetrics holds the Prometheus gauges reported after a load run.
type LoadMetrics struct {
	Rows           prometheus.Gauge
	Columns        prometheus.Gauge
	TrainRows      prometheus.Gauge
	TestRows       prometheus.Gauge
	LoadSeconds    prometheus.Gauge
	HeapAllocBytes prometheus.Gauge
	HeapInuseBytes prometheus.Gauge
	HeapSysBytes   prometheus.Gauge
}

// NewLoadMetrics creates the gauge set and registers it with the registry.
func NewLoadMetrics(registry *prometheus.Registry, labels prometheus.Labels) *LoadMetrics {
	metrics := &LoadMetrics{
		Rows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_rows",
			Help:        "Number of rows in the loaded dataset",
			ConstLabels: labels,
		}),
		Columns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_columns",
			Help:        "Number of columns in the loaded dataset",
			ConstLabels: labels,
		}),
		TrainRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_train_rows",
			Help:        "Number of rows in the train partition",
			ConstLabels: labels,
		}),
		TestRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_test_rows",
			Help:        "Number of rows in the test partition",
			ConstLabels: labels,
		}),
		LoadSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_seconds",
			Help:        "Time spent decoding the input file in seconds",
			ConstLabels: labels,
		}),
		HeapAllocBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_heap_alloc_bytes",
			Help:        "Heap allocation in bytes after the load",
			ConstLabels: labels,
		}),
		HeapInuseBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_heap_inuse_bytes",
			Help:        "Heap in use in bytes after the load",
			ConstLabels: labels,
		}),
		HeapSysBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "datasets_load_heap_sys_bytes",
			Help:        "Heap system in bytes after the load",
			ConstLabels: labels,
		}),
	}

	registry.MustRegister(
		metrics.Rows,
		metrics.Columns,
		metrics.TrainRows,
		metrics.TestRows,
		metrics.LoadSeconds,
		metrics.HeapAllocBytes,
		metrics.HeapInuseBytes,
		metrics.HeapSysBytes,
	)

	return metrics
}

// pushLoadMetrics reports the summary of a load run to a push gateway. The
// dataset stays fully resident in memory, so the heap figures show what the
// load actually cost.
func pushLoadMetrics(cfg Config, summary *LoadSummary) error {
	registry := prometheus.NewRegistry()
	metrics := NewLoadMetrics(registry, prometheus.Labels(cfg.LabelMap))

	var memstats runtime.MemStats
	runtime.ReadMemStats(&memstats)

	metrics.Rows.Set(float64(summary.Rows))
	metrics.Columns.Set(float64(summary.Columns))
	metrics.TrainRows.Set(float64(summary.TrainRows))
	metrics.TestRows.Set(float64(summary.TestRows))
	metrics.LoadSeconds.Set(summary.LoadTime.Seconds())
	metrics.HeapAllocBytes.Set(float64(memstats.HeapAlloc))
	metrics.HeapInuseBytes.Set(float64(memstats.HeapInuse))
	metrics.HeapSysBytes.Set(float64(memstats.HeapSys))

	if err := push.New(cfg.PushURL, "datasets-load").Gatherer(registry).Push(); err != nil {
		return err
	}

	log.WithFields(log.Fields{"url": cfg.PushURL}).Info("Pushed load metrics")
	return nil
}
