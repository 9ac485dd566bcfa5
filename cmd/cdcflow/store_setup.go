package main

import (
	"fmt"
	"path/filepath"

	"github.com/fastcut/cdcflow/cmd/cdcflow/internal/appconfig"
	"github.com/fastcut/cdcflow/index"
	"github.com/fastcut/cdcflow/store"
)

// openStore builds the index.Index named by cfg.IndexBackend and wraps
// it in a store.FSStore rooted at cfg.StoreRoot. The returned closer
// must be called (possibly a no-op) once the caller is done with the
// store.
func openStore(cfg appconfig.Config, metrics *store.Metrics) (*store.FSStore, func() error, error) {
	var idx index.Index
	closer := func() error { return nil }

	switch cfg.IndexBackend {
	case "", "memory":
		idx = index.NewMemoryIndex()
	case "json":
		ji, err := index.NewPersistentIndexJSON(filepath.Join(cfg.StoreRoot, "index.json"))
		if err != nil {
			return nil, nil, fmt.Errorf("open json index: %w", err)
		}
		idx = ji
	case "pebble":
		pi, err := index.OpenPebbleIndex(filepath.Join(cfg.StoreRoot, "pebble-index"))
		if err != nil {
			return nil, nil, fmt.Errorf("open pebble index: %w", err)
		}
		idx = pi
		closer = pi.Close
	default:
		return nil, nil, fmt.Errorf("unknown index backend %q", cfg.IndexBackend)
	}

	fs, err := store.NewFSStore(cfg.StoreRoot, idx, metrics)
	if err != nil {
		return nil, nil, fmt.Errorf("open fs store: %w", err)
	}
	return fs, closer, nil
}
