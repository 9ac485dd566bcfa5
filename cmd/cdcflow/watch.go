package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastcut/cdcflow"
	"github.com/fastcut/cdcflow/config"
	"github.com/fastcut/cdcflow/manifest"
	"github.com/fastcut/cdcflow/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-chunk files under dir on every write, serving Prometheus metrics",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

// runWatch follows the familiar fsnotify watch-loop idiom (watch a
// directory, filter write/create events, debounce, react) generalized
// from "capture a file change" to "re-chunk a file", with a Prometheus
// /metrics endpoint serving the store's dedup counters.
func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ccfg, err := cfg.ChunkerConfig()
	if err != nil {
		return fmt.Errorf("chunk config: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics := store.NewMetricsFor(reg)

	fs, closeStore, err := openStore(cfg, metrics)
	if err != nil {
		return err
	}
	defer closeStore()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

	go func() {
		log.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	defer server.Close()

	log.Info().Str("dir", dir).Msg("watching for changes")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			time.Sleep(100 * time.Millisecond) // let the writer finish
			if err := rechunkFile(event.Name, ccfg, cfg.HashAlgorithm, fs); err != nil {
				log.Error().Err(err).Str("file", event.Name).Msg("rechunk failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

// rechunkFile reads path whole and re-chunks it from scratch, saving
// every resulting chunk into fs and logging a fresh manifest's chunk
// count. A production watcher would diff against the previous
// manifest instead of always starting a new Chunker; a whole-file
// reread is a deliberate simplification for the CLI's watch mode.
func rechunkFile(path string, ccfg config.Config, hashAlgorithm string, fs *store.FSStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	m := manifest.NewManifest(filepath.Base(path), int64(len(data)), hashAlgorithm)
	c := cdcflow.New(ccfg)

	save := func(ch cdcflow.Chunk) error {
		if err := fs.Save(ch); err != nil {
			return err
		}
		m.Append(manifest.Entry{Hash: ch.Hash, Offset: ch.Offset, Size: ch.Len()})
		return nil
	}

	chunks, _, err := c.Push(data)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	for _, ch := range chunks {
		if err := save(ch); err != nil {
			return err
		}
	}

	final, err := c.Finish()
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	if final != nil {
		if err := save(*final); err != nil {
			return err
		}
	}

	log.Info().Str("file", path).Int("chunks", len(m.Entries)).Msg("rechunked")
	return nil
}
