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
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var (
	cfgFile  string
	logLevel string

	// v holds the configuration of the running command; flags are bound to
	// it by each command before config.Load.
	v = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "trsltx",
	Short: "Grammar-guided LaTeX translator",
	Long: `A CLI application that translates LaTeX documents chunk by chunk through a
completion service. Each chunk is parsed, a grammar restricting the answer to the
commands, labels and references of the chunk is sent with the request, and the
candidate whose structure is closest to the source is kept.

The languages are taken from the file names: article_fr.tex -> article_en.tex.

Chunks are delimited in the body by lines holding only:
  %trsltx-split          end of a chunk
  %trsltx-begin-ignore   start of a region copied verbatim
  %trsltx-end-ignore     end of that region

Use "trsltx translate --help" for translation options.`,
	Version:      version,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./trsltx.yaml or $HOME/.config/trsltx/trsltx.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
}
