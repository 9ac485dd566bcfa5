package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fastcut/cdcflow"
	"github.com/fastcut/cdcflow/manifest"
)

var chunkPushSize int

var chunkCmd = &cobra.Command{
	Use:   "chunk <file>",
	Short: "Split a file into content-defined chunks and store them",
	Args:  cobra.ExactArgs(1),
	RunE:  runChunk,
}

func init() {
	chunkCmd.Flags().IntVar(&chunkPushSize, "push-size", 1<<20, "bytes read per Chunker.Push call")
}

func runChunk(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ccfg, err := cfg.ChunkerConfig()
	if err != nil {
		return fmt.Errorf("chunk config: %w", err)
	}

	fs, closeStore, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}

	m := manifest.NewManifest(filepath.Base(path), stat.Size(), cfg.HashAlgorithm)
	c := cdcflow.New(ccfg)

	buf := make([]byte, chunkPushSize)
	save := func(ch cdcflow.Chunk) error {
		if err := fs.Save(ch); err != nil {
			return err
		}
		m.Append(manifest.Entry{Hash: ch.Hash, Offset: ch.Offset, Size: ch.Len()})
		return nil
	}

	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			input := make([]byte, n)
			copy(input, buf[:n])
			chunks, _, err := c.Push(input)
			if err != nil {
				return fmt.Errorf("push: %w", err)
			}
			for _, ch := range chunks {
				if err := save(ch); err != nil {
					return fmt.Errorf("save chunk: %w", err)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read %q: %w", path, readErr)
		}
	}

	final, err := c.Finish()
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	if final != nil {
		if err := save(*final); err != nil {
			return fmt.Errorf("save final chunk: %w", err)
		}
	}

	manifestPath := filepath.Join(cfg.StoreRoot, m.FileName+".manifest.json")
	if err := m.Save(manifestPath); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}

	log.Info().
		Str("file", path).
		Int("chunks", len(m.Entries)).
		Str("manifest", manifestPath).
		Msg("chunked file")
	return nil
}
