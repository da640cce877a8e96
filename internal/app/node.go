package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wandler/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/adapters/terminal"  //nolint:depguard // Wired in app layer
	"go.trai.ch/wandler/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.LocatorNodeID,
			config.LoaderNodeID,
			shell.NodeID,
			terminal.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			terminal.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.ConfigLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[*terminal.Sink](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, loader, executor, sink, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[*terminal.Sink](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, sink, tracer), nil
}
