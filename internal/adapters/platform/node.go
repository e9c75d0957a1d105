package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cascade/internal/core/domain"
)

// NodeID is the unique identifier for the platform Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[domain.Platform]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Platform, error) {
			return Detect(), nil
		},
	})
}
