package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastcut/cdcflow/manifest"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <manifest>",
	Short: "Verify every chunk a manifest references against the store",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs, closeStore, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return fmt.Errorf("load manifest %q: %w", manifestPath, err)
	}

	if err := m.VerifyFile(fs.Load); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	log.Info().
		Str("manifest", manifestPath).
		Str("file", m.FileName).
		Int("chunks", len(m.Entries)).
		Msg("verification passed")
	return nil
}
