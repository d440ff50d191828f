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
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/valpere/trsltx/internal/document"
)

var chunksInput string

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "List the chunks of a LaTeX document",
	Long: `List the chunks translate would process: index, kind, length in characters
and the first non-blank line. A body without markers is auto-split at
--max-chunk characters first, as translate does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd, map[string]string{"max_chunk": "max-chunk"})
		if err != nil {
			return err
		}
		doc, err := document.Read(chunksInput)
		if err != nil {
			return err
		}
		chunks, err := segment(doc, cfg.MaxChunk, log)
		if err != nil {
			return err
		}

		for i, ch := range chunks {
			fmt.Printf("%4d  %-9s  %6d  %s\n", i, ch.Kind, utf8.RuneCountInString(ch.Content), firstLine(ch.Content, 60))
		}
		return nil
	},
}

// firstLine returns the first non-blank line of s, cut to max runes.
func firstLine(s string, max int) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r := []rune(line); len(r) > max {
			return string(r[:max]) + "..."
		}
		return line
	}
	return ""
}

func init() {
	rootCmd.AddCommand(chunksCmd)

	chunksCmd.Flags().StringVarP(&chunksInput, "input", "i", "", "Input LaTeX file (required)")
	chunksCmd.Flags().Int("max-chunk", 2000, "Auto-split target for bodies without markers (0 disables)")

	chunksCmd.MarkFlagRequired("input")
}
