package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cascade/internal/adapters/cas"
	"go.trai.ch/cascade/internal/adapters/config"
	"go.trai.ch/cascade/internal/adapters/linear"
	"go.trai.ch/cascade/internal/adapters/logger"
	"go.trai.ch/cascade/internal/adapters/platform"
	"go.trai.ch/cascade/internal/adapters/properties"
	"go.trai.ch/cascade/internal/adapters/shell"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			linear.NodeID,
			properties.NodeID,
			cas.NodeID,
			cas.HasherNodeID,
			platform.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.VersionResolver](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StampStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			plat, err := graft.Dep[domain.Platform](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, executor, log, renderer, resolver, store, hasher, plat), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
