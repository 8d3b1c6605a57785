package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdb/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/symbolmap" //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cdb/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			report.NodeID,
			store.NodeID,
			symbolmap.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
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

	reports, err := graft.Dep[ports.ReportReader](ctx)
	if err != nil {
		return nil, err
	}

	db, err := graft.Dep[ports.DatabaseStore](ctx)
	if err != nil {
		return nil, err
	}

	symbols, err := graft.Dep[ports.SymbolMapStore](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, log, reports, db, symbols, w, tracer), nil
}
