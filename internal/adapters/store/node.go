package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdb/internal/core/ports"
)

// NodeID is the unique identifier for the database store Graft node.
const NodeID graft.ID = "adapter.database_store"

func init() {
	graft.Register(graft.Node[ports.DatabaseStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DatabaseStore, error) {
			return NewStore(), nil
		},
	})
}
