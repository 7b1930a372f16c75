package api

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"github.com/erazemk/medsupply/internal/registry"
	"github.com/erazemk/medsupply/internal/store"
)

// persister writes the registry snapshot after a mutation. Saves are
// serialized and each takes its snapshot after acquiring the lock, so the
// last save to commit always holds the newest state.
type persister struct {
	Reg *registry.Registry
	DB  *sql.DB

	mu sync.Mutex
}

// save stores the current registry state. Failures are logged, not
// returned: the in-memory registry stays authoritative.
func (p *persister) save(ctx context.Context) {
	if p == nil || p.DB == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := store.SaveSnapshot(ctx, p.DB, p.Reg.Snapshot()); err != nil {
		slog.Error("saving snapshot", "error", err)
	}
}
