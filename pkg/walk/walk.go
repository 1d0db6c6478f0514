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

package walk

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 FileSet is the ordered list of file paths produced by a walk
type FileSet []string

// 🔧 Options configures a Walker
type Options struct {
	// Scanner lists directories, defaults to OSScanner
	Scanner Scanner
	// Ignore holds doublestar patterns matched against root-relative slash paths
	Ignore []string
}

// 🚶 Walker enumerates files below a root directory
type Walker struct {
	scanner Scanner
	ignore  []string
}

// 🏭 New creates a new walker with the given options
func New(opts Options) (*Walker, error) {
	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	scanner := opts.Scanner
	if scanner == nil {
		scanner = NewOSScanner()
	}

	return &Walker{
		scanner: scanner,
		ignore:  opts.Ignore,
	}, nil
}

// 🎯 Enumerate walks root with the default OSScanner and no ignore patterns
func Enumerate(ctx context.Context, root string) (FileSet, error) {
	w, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return w.Enumerate(ctx, root)
}

// 🎯 Enumerate returns every non-directory entry reachable under root
func (w *Walker) Enumerate(ctx context.Context, root string) (FileSet, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Msg("enumerating files")

	files := FileSet{}
	if err := w.visit(ctx, root, "", &files); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("files", len(files)).Msg("enumeration complete")
	return files, nil
}

// 🔄 visit scans dir, appends its files and recurses into its sub-directories
func (w *Walker) visit(ctx context.Context, dir, rel string, files *FileSet) error {
	if err := ctx.Err(); err != nil {
		return errors.Errorf("walking %s: %w", dir, err)
	}

	listing, err := w.scanner.Scan(ctx, dir)
	if err != nil {
		return errors.Errorf("scanning %s: %w", dir, err)
	}
	if err := listing.Validate(dir); err != nil {
		return errors.WithStack(err)
	}

	for _, name := range listing.Files {
		if w.ignored(joinPath(rel, name)) {
			continue
		}
		*files = append(*files, joinPath(dir, name))
	}

	for _, name := range listing.SubDirs {
		subRel := joinPath(rel, name)
		if w.ignored(subRel) {
			zerolog.Ctx(ctx).Debug().Str("dir", subRel).Msg("directory ignored by pattern")
			continue
		}
		if err := w.visit(ctx, joinPath(dir, name), subRel, files); err != nil {
			return err
		}
	}

	return nil
}

// 🔍 ignored reports whether a root-relative path matches any ignore pattern
func (w *Walker) ignored(rel string) bool {
	for _, pattern := range w.ignore {
		// patterns were validated in New
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// joinPath joins with a forward slash, without doubling one already present
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
