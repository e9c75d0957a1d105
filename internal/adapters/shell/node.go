package shell

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/cascade/internal/adapters/detector"
	"go.trai.ch/cascade/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{detector.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			mode, err := graft.Dep[detector.Mode](ctx)
			if err != nil {
				return nil, err
			}
			usePTY := mode == detector.ModeInteractive && runtime.GOOS != "windows"
			return NewExecutor(nil, nil).WithPTY(usePTY), nil
		},
	})
}
