package render

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

// NodeID is the Graft node ID of the tree renderer.
const NodeID graft.ID = "adapter.render.tree"

func init() {
	graft.Register(graft.Node[*Tree]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Tree, error) {
			return NewTree(os.Stdout), nil
		},
	})
}
