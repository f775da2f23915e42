package ingester

import "time"

const (
	defaultWorkerCount = 20
	defaultBatchSize   = 100

	outputFlushThreshold = 10_000
	inputFlushThreshold  = 10_000

	idleSleepDuration      = 30 * time.Second
	postBatchSleepDuration = 0
	backoffInitial         = 5 * time.Second
	backoffMax             = 2 * time.Minute
)
