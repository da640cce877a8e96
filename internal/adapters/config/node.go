package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/internal/adapters/logger"
	"go.trai.ch/wandler/internal/core/ports"
)

const (
	// LocatorNodeID is the graft node ID of the configuration locator.
	LocatorNodeID graft.ID = "adapter.config_locator"

	// LoaderNodeID is the graft node ID of the configuration loader.
	LoaderNodeID graft.ID = "adapter.config_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
