package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/utxo/model"
)

const scriptIngesterSubsystem = "script_ingester"

var (
	scriptFetchHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "fetch_heights_total",
		Help:      "Count of attempts to fetch the next heights to classify.",
	}, []string{"coin", "network", "status"})

	scriptFetchHeightsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "fetch_heights_duration_seconds",
		Help:      "Duration of fetching the next heights to classify.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	scriptProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "process_batch_total",
		Help:      "Count of processed batches.",
	}, []string{"coin", "network", "status"})

	scriptProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of fetching, classifying and writing a batch of heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	scriptProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "process_batch_size",
		Help:      "Number of heights processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"coin", "network"})

	scriptProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "process_height_duration_seconds",
		Help:      "Duration of fetching and classifying a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	scriptClassifiedInputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "classified_inputs_total",
		Help:      "Count of stored input classifications by spend type.",
	}, []string{"coin", "network", "spend_type", "incomplete"})

	scriptLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: scriptIngesterSubsystem,
		Name:      "last_height",
		Help:      "Highest block height with stored classifications.",
	}, []string{"coin", "network"})
)

type ScriptIngester struct {
	coin    string
	network string
}

func NewScriptIngester(coin model.Coin, n network.Network) *ScriptIngester {
	c := string(coin)
	if c == "" {
		c = "unknown"
	}
	return &ScriptIngester{coin: c, network: n.String()}
}

func (m ScriptIngester) ObserveFetchHeights(err error, started time.Time) {
	s := status(err)
	scriptFetchHeightsTotal.WithLabelValues(m.coin, m.network, s).Inc()
	scriptFetchHeightsDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
}

func (m ScriptIngester) ObserveProcessBatch(err error, heights int, started time.Time) {
	s := status(err)
	scriptProcessBatchTotal.WithLabelValues(m.coin, m.network, s).Inc()
	scriptProcessBatchDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	scriptProcessBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(heights))
}

func (m ScriptIngester) ObserveProcessHeight(err error, _ uint64, started time.Time) {
	scriptProcessHeightDuration.WithLabelValues(m.coin, m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveWrittenBlock counts the classified inputs of a stored block and advances the height gauge.
func (m ScriptIngester) ObserveWrittenBlock(block *model.ScriptBlock) {
	for _, in := range block.Inputs {
		scriptClassifiedInputsTotal.WithLabelValues(m.coin, m.network, string(in.SpendType), strconv.FormatBool(in.Incomplete)).Inc()
	}
	scriptLastHeight.WithLabelValues(m.coin, m.network).Set(float64(block.Height))
}
