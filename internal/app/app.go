package app

import (
	"fmt"
	"io/fs"

	"github.com/itsmealinn/transaction-simulator/internal/config"
	"github.com/itsmealinn/transaction-simulator/internal/service"
	"github.com/itsmealinn/transaction-simulator/internal/store"
)

type App struct {
	Replay *service.ReplayService
	Audit  store.AuditRepository
}

// NewApp wires the replay service and, when configured, the sqlite audit
// trail, then returns the App entity with its cleanup function.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	var recorder service.AuditRecorder
	var auditStore *store.Store

	if cfg.Audit.Path != "" {
		s, err := store.NewStore(cfg.Audit.Path, migrationsFS)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize audit database: %w", err)
		}
		auditStore = s
		recorder = s
	}

	cleanup := func() {
		if auditStore != nil {
			if err := auditStore.Close(); err != nil {
				fmt.Printf("Error closing audit DB: %v\n", err)
			}
		}
	}

	application := &App{Replay: service.NewReplayService(recorder)}
	if auditStore != nil {
		application.Audit = auditStore
	}

	return application, cleanup, nil
}
