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
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/treetools/pkg/text"
	"github.com/walteh/treetools/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

// FileLineCount is the segment count of a single file
type FileLineCount struct {
	Path  string
	Lines int
}

// 📋 LineReport holds per-file counts in FileSet order and their total
type LineReport struct {
	Files []FileLineCount
	Total int
}

// FileCount returns the number of files counted
func (r *LineReport) FileCount() int {
	return len(r.Files)
}

// 🔢 CountLines reads every file in files and counts its newline segments.
// It never writes.
func CountLines(ctx context.Context, files walk.FileSet, progress CountProgress) (*LineReport, error) {
	zerolog.Ctx(ctx).Debug().Int("files", len(files)).Msg("counting lines")

	report := &LineReport{
		Files: make([]FileLineCount, 0, len(files)),
	}

	for _, path := range files {
		if err := checkContext(ctx, path); err != nil {
			return report, err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return report, errors.WithStack(&FileError{Path: path, Op: "read", Err: err})
		}

		lines := text.CountSegments(string(content))
		report.Files = append(report.Files, FileLineCount{Path: path, Lines: lines})
		report.Total += lines

		if progress != nil {
			progress.FoundLines(path, lines)
		}
	}

	return report, nil
}

// 📦 CountOperation adapts CountLines to the Operation interface
type CountOperation struct {
	Files    walk.FileSet
	Progress CountProgress

	// Report is set once Execute returns, even on failure
	Report *LineReport
}

// NewCountOperation creates a new count operation
func NewCountOperation(files walk.FileSet, progress CountProgress) *CountOperation {
	return &CountOperation{
		Files:    files,
		Progress: progress,
	}
}

func (op *CountOperation) Name() string {
	return "count-lines"
}

func (op *CountOperation) Execute(ctx context.Context) error {
	report, err := CountLines(ctx, op.Files, op.Progress)
	op.Report = report
	return err
}
