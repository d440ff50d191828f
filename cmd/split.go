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

	"github.com/spf13/cobra"

	"github.com/valpere/trsltx/internal/chunker"
	"github.com/valpere/trsltx/internal/document"
)

var (
	splitInput  string
	splitOutput string
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Insert split markers into a LaTeX document",
	Long: `Insert %trsltx-split markers into the body of a LaTeX document so that chunks
stay under --max characters. Markers are placed only at paragraph breaks outside
groups and math, so a single long paragraph may still exceed the target.

The result is written to --output, or to stdout when it is omitted. Edit the
markers by hand and add ignore regions before running translate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if splitOutput != "" && samePath(splitInput, splitOutput) {
			return fmt.Errorf("input file and output file cannot be the same")
		}
		cfg, log, err := setup(cmd, map[string]string{"max_chunk": "max"})
		if err != nil {
			return err
		}
		if cfg.MaxChunk <= 0 {
			return fmt.Errorf("--max must be positive")
		}

		doc, err := document.Read(splitInput)
		if err != nil {
			return err
		}
		if chunker.HasMarkers(doc.Body) {
			return fmt.Errorf("%s already contains trsltx markers", splitInput)
		}

		body := chunker.GenerateSplit(doc.Body, cfg.MaxChunk)
		chunks, err := chunker.ExtractChunks(body)
		if err != nil {
			return err
		}
		log.Info("body split", "chunks", len(chunks), "max_chunk", cfg.MaxChunk)

		out := &document.Document{Preamble: doc.Preamble, Body: body, Afterword: doc.Afterword}
		return writeOutput(splitOutput, out.String())
	},
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitInput, "input", "i", "", "Input LaTeX file (required)")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "", "Output file (stdout if empty)")
	splitCmd.Flags().Int("max", 2000, "Target chunk length in characters")

	splitCmd.MarkFlagRequired("input")
}
