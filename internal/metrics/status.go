// Package metrics exposes Prometheus collectors for the indexer components.
package metrics

const namespace = "blockinsight7000"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
