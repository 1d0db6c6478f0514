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

package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/treetools/cmd/treetools/opts"
	"github.com/walteh/treetools/pkg/log"
	"github.com/walteh/treetools/pkg/operation"
	"github.com/walteh/treetools/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// NewFindAndReplaceCmd creates a new find-and-replace command
func NewFindAndReplaceCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		separator string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "find-and-replace <find> <replace> [root_path]",
		Short: "Replace a whole word in every file, in place",
		Long: `Find-and-replace rewrites every file under root_path (default ".").
It will:
1. Split the file content into whitespace separated tokens
2. Swap every token exactly equal to <find> for <replace>
3. Join the tokens back together and overwrite the file

Tokens are joined with no separator unless --separator is given, so the
original whitespace of every file is lost, matched or not.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)
			root := rootArg(args, 2)

			replacer := text.NewTokenReplacer(args[0], args[1])
			replacer.Separator = opts.Config.Separator
			if cmd.Flags().Changed("separator") {
				replacer.Separator = separator
			}
			if err := replacer.Validate(); err != nil {
				return errors.Errorf("validating arguments: %w", err)
			}

			files, err := opts.Enumerate(ctx, root)
			if err != nil {
				return err
			}

			op := operation.NewRewriteOperation(files, replacer, operation.RewriteOptions{
				Progress: console,
				DryRun:   dryRun,
			})
			if err := opts.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("replacing %q: %w", args[0], err)
			}

			console.Rule(log.ReplaceRuleWidth)
			console.Done("mission accomplished!")

			return nil
		},
	}

	cmd.Flags().StringVar(&separator, "separator", "", "string placed between rejoined tokens")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute the rewrite without writing any file")

	return cmd
}
