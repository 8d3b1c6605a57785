package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdb/internal/core/ports"
)

// NodeID is the unique identifier for the report reader Graft node.
const NodeID graft.ID = "adapter.report_reader"

func init() {
	graft.Register(graft.Node[ports.ReportReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReportReader, error) {
			return NewReader(), nil
		},
	})
}
