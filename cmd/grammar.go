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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/trsltx/internal/latex"
)

var grammarInput string

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Print the generation grammar of a LaTeX fragment",
	Long: `Parse a LaTeX fragment and print the W3C EBNF grammar sent to the oracle
with it. The fragment is read from --input, or from stdin when --input is "-".
A fragment outside the parsed subset is reported with the offset of the error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			data []byte
			err  error
		)
		if grammarInput == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(grammarInput)
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		n, err := latex.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", grammarInput, err)
		}
		fmt.Print(latex.Grammar(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)

	grammarCmd.Flags().StringVarP(&grammarInput, "input", "i", "-", "Fragment file, - for stdin")
}
