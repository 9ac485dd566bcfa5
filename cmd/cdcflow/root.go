package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastcut/cdcflow/cmd/cdcflow/internal/appconfig"
)

var configPath string

// rootCmd is the cdcflow CLI entry point: a thin wrapper over the
// cdcflow library's Chunker, a store.Store, and manifest.Manifest —
// read the source file, feed a Chunker, save chunks, save a manifest —
// generalized into three subcommands.
var rootCmd = &cobra.Command{
	Use:   "cdcflow",
	Short: "Content-defined chunking, dedup store, and manifests",
	Long: `cdcflow splits files into content-defined chunks (FastCDC/Gear,
BLAKE3 strong hashes), stores them deduplicated on disk, and records a
manifest that can verify and reassemble the original file later.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	},
}

func loadConfig() (appconfig.Config, error) {
	cfg, err := appconfig.Load(configPath)
	if err != nil {
		return appconfig.Config{}, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a cdcflow YAML config file")
	rootCmd.AddCommand(chunkCmd, verifyCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("cdcflow failed")
	}
}
