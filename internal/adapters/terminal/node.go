package terminal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/internal/adapters/detector"
	"go.trai.ch/wandler/internal/core/ports"
)

// NodeID is the unique identifier for the terminal sink graft node.
const NodeID graft.ID = "adapter.terminal_sink"

func init() {
	graft.Register(graft.Node[*Sink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Sink, error) {
			return New(nil, nil, detector.Profile(detector.DetectEnvironment())), nil
		},
	})
}

var _ ports.OutputSink = (*Sink)(nil)
