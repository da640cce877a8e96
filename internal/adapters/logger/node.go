package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/internal/core/ports"
)

// NodeID is the unique identifier for the logger graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})
}

var _ ports.Logger = (*Logger)(nil)
