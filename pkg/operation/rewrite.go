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

package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/treetools/pkg/text"
	"github.com/walteh/treetools/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// 📄 FileOutcome records what happened to one rewritten file
type FileOutcome struct {
	Path         string
	Status       FileStatus
	Replacements int
}

// 📋 RewriteReport summarizes a rewrite run
type RewriteReport struct {
	Files        []FileOutcome
	Replacements int  // Total tokens replaced
	DryRun       bool // Whether writes were skipped
}

// 🔧 RewriteOptions configures Rewrite
type RewriteOptions struct {
	// Progress is notified after each file, may be nil
	Progress RewriteProgress
	// DryRun computes every rewrite but writes nothing
	DryRun bool
}

// 🔄 Rewrite rewrites every file in files with replacer, in order.
//
// Each file is read once and written back once at its original path, whether
// or not it contained a match. The first failure stops the run.
func Rewrite(ctx context.Context, files walk.FileSet, replacer *text.TokenReplacer, opts RewriteOptions) (*RewriteReport, error) {
	if err := replacer.Validate(); err != nil {
		return nil, errors.Errorf("validating replacement: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("find", replacer.Find).
		Str("replace", replacer.Replace).
		Int("files", len(files)).
		Bool("dry_run", opts.DryRun).
		Msg("rewriting files")

	report := &RewriteReport{
		Files:  make([]FileOutcome, 0, len(files)),
		DryRun: opts.DryRun,
	}

	for _, path := range files {
		if err := checkContext(ctx, path); err != nil {
			return report, err
		}

		outcome, err := rewriteFile(ctx, path, replacer, opts.DryRun)
		if err != nil {
			return report, err
		}

		report.Files = append(report.Files, outcome)
		report.Replacements += outcome.Replacements

		if opts.Progress != nil {
			opts.Progress.WorkingOn(path, outcome.Replacements)
		}
	}

	return report, nil
}

// 📄 rewriteFile performs the single read and single write for path
func rewriteFile(ctx context.Context, path string, replacer *text.TokenReplacer, dryRun bool) (FileOutcome, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{}, errors.WithStack(&FileError{Path: path, Op: "read", Err: err})
	}

	result, err := replacer.Rewrite(ctx, bytes.NewReader(content))
	if err != nil {
		return FileOutcome{}, errors.Errorf("rewriting %s: %w", path, err)
	}

	if !dryRun {
		// existing files keep their mode, 0644 only applies if path vanished
		if err := os.WriteFile(path, result.ModifiedContent, 0644); err != nil {
			return FileOutcome{}, errors.WithStack(&FileError{Path: path, Op: "write", Err: err})
		}
	}

	outcome := FileOutcome{
		Path:         path,
		Status:       statusOf(result.ReplacementCount, result.WasModified),
		Replacements: result.ReplacementCount,
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Stringer("status", outcome.Status).
		Int("replacements", outcome.Replacements).
		Msg("file processed")

	return outcome, nil
}

// 📦 RewriteOperation adapts Rewrite to the Operation interface
type RewriteOperation struct {
	Files    walk.FileSet
	Replacer *text.TokenReplacer
	Options  RewriteOptions

	// Report is set once Execute returns, even on failure
	Report *RewriteReport
}

// NewRewriteOperation creates a new rewrite operation
func NewRewriteOperation(files walk.FileSet, replacer *text.TokenReplacer, opts RewriteOptions) *RewriteOperation {
	return &RewriteOperation{
		Files:    files,
		Replacer: replacer,
		Options:  opts,
	}
}

func (op *RewriteOperation) Name() string {
	return "find-and-replace"
}

func (op *RewriteOperation) Execute(ctx context.Context) error {
	report, err := Rewrite(ctx, op.Files, op.Replacer, op.Options)
	op.Report = report
	return err
}
