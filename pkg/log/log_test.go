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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(logger *Logger)
		wantLogs []string
	}{
		{
			name: "found_lines",
			op: func(logger *Logger) {
				logger.FoundLines("./src/main.rs", 42)
			},
			wantLogs: []string{"found 42 lines in ./src/main.rs."},
		},
		{
			name: "count_summary",
			op: func(logger *Logger) {
				logger.FoundLines("./f.txt", 2)
				logger.Rule(CountRuleWidth)
				logger.LineTotal(2, 1)
			},
			wantLogs: []string{
				"found 2 lines in ./f.txt.",
				"---------------------------------------",
				"found 2 lines in 1 files.",
			},
		},
		{
			name: "replace_summary",
			op: func(logger *Logger) {
				logger.WorkingOn("root/x/a.txt", 1)
				logger.Rule(ReplaceRuleWidth)
				logger.Done("mission accomplished!")
			},
			wantLogs: []string{
				"working on root/x/a.txt.",
				"-------------------------",
				"mission accomplished!",
			},
		},
		{
			name: "file",
			op: func(logger *Logger) {
				logger.File("a/b.txt")
			},
			wantLogs: []string{"a/b.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(logger)

			lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, lines[i], "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	logger := New(io.Discard, zerolog.Nop())

	ctx := NewContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
