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
)

// NewListFilesCmd creates a new list-files command
func NewListFilesCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-files [root_path]",
		Short: "Print every file the other commands would visit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			files, err := opts.Enumerate(ctx, rootArg(args, 0))
			if err != nil {
				return err
			}

			console := log.FromContext(ctx)
			for _, file := range files {
				console.File(file)
			}

			return nil
		},
	}

	return cmd
}
