package symbolmap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdb/internal/core/ports"
)

// NodeID is the unique identifier for the symbol map store Graft node.
const NodeID graft.ID = "adapter.symbol_map_store"

func init() {
	graft.Register(graft.Node[ports.SymbolMapStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SymbolMapStore, error) {
			return NewStore(), nil
		},
	})
}
