package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdb/internal/core/ports"
)

// NodeID is the unique identifier for the report directory watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})
}
