package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/internal/adapters/logger"
	"go.trai.ch/wandler/internal/core/ports"
)

// NodeID is the unique identifier for the executor graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})
}
