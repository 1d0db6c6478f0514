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

package opts

import (
	"context"

	"github.com/walteh/treetools/pkg/config"
	"github.com/walteh/treetools/pkg/operation"
	"github.com/walteh/treetools/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Flags
	ConfigFile string
	Debug      bool
	Ignore     []string

	// Populated before any subcommand runs
	Config *config.Config
	Runner *operation.OperationRunner
}

// IgnorePatterns merges the config file patterns with --ignore flags
func (o *RootOpts) IgnorePatterns() []string {
	patterns := make([]string, 0, len(o.Config.Ignore)+len(o.Ignore))
	patterns = append(patterns, o.Config.Ignore...)
	return append(patterns, o.Ignore...)
}

// Enumerate walks root honoring the configured ignore patterns
func (o *RootOpts) Enumerate(ctx context.Context, root string) (walk.FileSet, error) {
	w, err := walk.New(walk.Options{Ignore: o.IgnorePatterns()})
	if err != nil {
		return nil, errors.Errorf("creating walker: %w", err)
	}

	files, err := w.Enumerate(ctx, root)
	if err != nil {
		return nil, errors.Errorf("enumerating %s: %w", root, err)
	}

	return files, nil
}
