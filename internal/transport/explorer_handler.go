// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"

	"github.com/goodnatureofminers/blockinsight7000-scripts/internal/network"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer
	network  network.Network
	registry *network.Registry
}

// NewExplorerHandler returns an ExplorerHandler serving the given network.
func NewExplorerHandler(n network.Network, registry *network.Registry) blockinsight7000v1.ExplorerServiceServer {
	return &ExplorerHandler{network: n, registry: registry}
}

// Health reports server health along with the served network and its genesis hash.
func (h *ExplorerHandler) Health(_ context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	genesis := h.registry.GenesisHash(h.network)
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: fmt.Sprintf("network=%s genesis=%s", h.network, genesis),
	}, nil
}
