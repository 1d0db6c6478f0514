// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/treetools/cmd/treetools/commands"
	"github.com/walteh/treetools/cmd/treetools/opts"
	"github.com/walteh/treetools/pkg/config"
	"github.com/walteh/treetools/pkg/log"
	"github.com/walteh/treetools/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd creates the root command with every subcommand attached
func newRootCmd(rootOpts *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treetools",
		Short: "Small utilities for working on a local source tree",
		Long: `treetools enumerates the files under a directory and either counts
their lines or replaces a whole word in all of them, in place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupRootOpts(cmd, rootOpts)
		},
	}

	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewCountLinesCmd(rootOpts),
		commands.NewFindAndReplaceCmd(rootOpts),
		commands.NewListFilesCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", "", "settings file (.yaml, .yml, .hcl or .json)")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringArrayVar(&rootOpts.Ignore, "ignore", nil, "doublestar pattern of paths to skip, relative to the root (repeatable)")
}

// setupRootOpts configures logging and loads settings once flags are parsed
func setupRootOpts(cmd *cobra.Command, rootOpts *opts.RootOpts) error {
	logger := setupLogging(cmd, rootOpts.Debug)
	ctx := logger.WithContext(cmd.Context())

	cfg := config.Default()
	if rootOpts.ConfigFile != "" {
		loaded, err := config.Load(ctx, rootOpts.ConfigFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	rootOpts.Config = cfg
	rootOpts.Runner = operation.NewRunner(&logger)

	// commands print progress through log.FromContext
	cmd.SetContext(log.NewContext(ctx, log.New(cmd.OutOrStdout(), logger)))
	return nil
}

// setupLogging builds the zerolog logger used for diagnostics on stderr
func setupLogging(cmd *cobra.Command, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := cmd.ErrOrStderr()
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = out
		w.NoColor = out != os.Stderr
	})

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
