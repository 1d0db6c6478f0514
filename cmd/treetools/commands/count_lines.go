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
)

// NewCountLinesCmd creates a new count-lines command
func NewCountLinesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count-lines [root_path]",
		Short: "Count lines per file and in total",
		Long: `Count-lines reports the number of newline separated lines of every file
under root_path (default ".").
A trailing newline counts as one more, empty, line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)
			root := rootArg(args, 0)

			files, err := opts.Enumerate(ctx, root)
			if err != nil {
				return err
			}

			op := operation.NewCountOperation(files, console)
			if err := opts.Runner.Run(ctx, op); err != nil {
				return err
			}

			console.Rule(log.CountRuleWidth)
			console.LineTotal(op.Report.Total, op.Report.FileCount())

			return nil
		},
	}

	return cmd
}
