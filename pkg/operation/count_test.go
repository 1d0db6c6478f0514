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
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/treetools/pkg/walk"
	"gitlab.com/tozd/go/errors"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name      string
		files     map[string]string
		wantFiles map[string]int
		wantTotal int
	}{
		{
			name:      "single_file",
			files:     map[string]string{"f.txt": "one\ntwo"},
			wantFiles: map[string]int{"f.txt": 2},
			wantTotal: 2,
		},
		{
			name:      "trailing_newline_counts",
			files:     map[string]string{"a.txt": "a\nb\nc", "b.txt": "a\nb\nc\n"},
			wantFiles: map[string]int{"a.txt": 3, "b.txt": 4},
			wantTotal: 7,
		},
		{
			name:      "empty_file_is_one_line",
			files:     map[string]string{"empty.txt": "", "sub/crlf.txt": "x\r\ny"},
			wantFiles: map[string]int{"empty.txt": 1, "sub/crlf.txt": 2},
			wantTotal: 3,
		},
		{
			name:      "no_files",
			files:     map[string]string{},
			wantFiles: map[string]int{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, root := createTestEnv(t, tt.files)
			files, err := walk.Enumerate(ctx, root)
			require.NoError(t, err)

			progress := &MockProgress{}
			for name, lines := range tt.wantFiles {
				progress.On("FoundLines", root+"/"+name, lines).Once()
			}

			report, err := CountLines(ctx, files, progress)
			require.NoError(t, err)
			progress.AssertExpectations(t)

			assert.Equal(t, tt.wantTotal, report.Total)
			assert.Equal(t, len(tt.wantFiles), report.FileCount())
			for _, fc := range report.Files {
				assert.Equal(t, tt.wantFiles[fc.Path[len(root)+1:]], fc.Lines, "lines of %s", fc.Path)
			}

			for name, content := range tt.files {
				assert.Equal(t, content, readFile(t, root+"/"+name), "counting must not modify files")
			}
		})
	}
}

func TestCountLinesMissingFile(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"a.txt": "a\nb"})

	report, err := CountLines(ctx, walk.FileSet{root + "/a.txt", root + "/gone.txt"}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, 2, report.Total, "counts before the failure are kept")
	assert.Equal(t, 1, strings.Count(err.Error(), root+"/gone.txt"), "path should be named once: %s", err)
}

func TestFileErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *FileError
		want string
	}{
		{
			name: "path_error_for_same_path",
			err: &FileError{Path: "x/a.txt", Op: "read", Err: &fs.PathError{
				Op: "open", Path: "x/a.txt", Err: fs.ErrNotExist,
			}},
			want: "open x/a.txt: file does not exist",
		},
		{
			name: "plain_error",
			err:  &FileError{Path: "x/a.txt", Op: "write", Err: fs.ErrPermission},
			want: "write x/a.txt: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrIO))
		})
	}
}

func TestCountOperation(t *testing.T) {
	ctx, root := createTestEnv(t, map[string]string{"f.txt": "one\ntwo"})

	op := NewCountOperation(walk.FileSet{root + "/f.txt"}, nil)
	require.NoError(t, NewRunner(nil).Run(ctx, op))

	require.NotNil(t, op.Report)
	assert.Equal(t, 2, op.Report.Total)
	assert.Equal(t, 1, op.Report.FileCount())
	assert.Equal(t, "count-lines", op.Name())
}
