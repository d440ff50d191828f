/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/trsltx/internal/chunker"
	"github.com/valpere/trsltx/internal/config"
	"github.com/valpere/trsltx/internal/document"
	"github.com/valpere/trsltx/internal/logging"
)

// setup binds the given config keys to the flags of cmd, loads the
// configuration and builds the logger.
func setup(cmd *cobra.Command, flags map[string]string) (*config.Config, *slog.Logger, error) {
	if err := v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		return nil, nil, err
	}
	for key, name := range flags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return nil, nil, fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, nil, err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.New(level), nil
}

// segment returns the chunks of the document body. A body without any
// marker is auto-split at maxChunk code points first.
func segment(doc *document.Document, maxChunk int, log *slog.Logger) ([]chunker.Chunk, error) {
	body := doc.Body
	if maxChunk > 0 && !chunker.HasMarkers(body) {
		body = chunker.GenerateSplit(body, maxChunk)
		log.Debug("body auto-split", "max_chunk", maxChunk)
	}
	chunks, err := chunker.ExtractChunks(body)
	if err != nil {
		return nil, fmt.Errorf("segment body: %w", err)
	}
	return chunks, nil
}

// writeOutput writes text to path, or to stdout when path is empty.
func writeOutput(path, text string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
