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

package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{}},
		{name: "only_whitespace", content: " \t\n\r\n ", want: []string{}},
		{name: "single", content: "alpha", want: []string{"alpha"}},
		{name: "collapse_runs", content: "alpha  \t beta\n\n\ngamma", want: []string{"alpha", "beta", "gamma"}},
		{name: "trim_edges", content: "\n  alpha beta  \n", want: []string{"alpha", "beta"}},
		{name: "punctuation_stays_attached", content: "foo(bar, baz);", want: []string{"foo(bar,", "baz);"}},
		{name: "unicode_spaces", content: "a b c\u0085d", want: []string{"a", "b", "c", "d"}},
		{name: "information_separators", content: "a\x1cb\x1fc", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.content)
			assert.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i], "token %d should match", i)
			}
		})
	}
}

func TestTokenReplacer_Rewrite(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		find         string
		replace      string
		separator    string
		want         string
		wantCount    int
		wantTokens   int
		wantModified bool
	}{
		{
			name:         "single_match",
			content:      "alpha beta\ngamma",
			find:         "beta",
			replace:      "BETA",
			want:         "alphaBETAgamma",
			wantCount:    1,
			wantTokens:   3,
			wantModified: true,
		},
		{
			name:         "every_occurrence",
			content:      "x y x\tx",
			find:         "x",
			replace:      "z",
			want:         "zyzz",
			wantCount:    3,
			wantTokens:   4,
			wantModified: true,
		},
		{
			name:         "whole_token_only",
			content:      "foobar foo barfoo",
			find:         "foo",
			replace:      "qux",
			want:         "foobarquxbarfoo",
			wantCount:    1,
			wantTokens:   3,
			wantModified: true,
		},
		{
			name:         "case_sensitive",
			content:      "Foo foo FOO",
			find:         "foo",
			replace:      "bar",
			want:         "FoobarFOO",
			wantCount:    1,
			wantTokens:   3,
			wantModified: true,
		},
		{
			name:         "no_match_still_reformats",
			content:      "hello world\n",
			find:         "absent",
			replace:      "present",
			want:         "helloworld",
			wantCount:    0,
			wantTokens:   2,
			wantModified: true,
		},
		{
			name:         "no_match_single_token_unchanged",
			content:      "hello",
			find:         "absent",
			replace:      "present",
			want:         "hello",
			wantCount:    0,
			wantTokens:   1,
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			find:         "x",
			replace:      "y",
			want:         "",
			wantModified: false,
		},
		{
			name:         "replace_with_empty",
			content:      "keep drop keep",
			find:         "drop",
			replace:      "",
			want:         "keepkeep",
			wantCount:    1,
			wantTokens:   3,
			wantModified: true,
		},
		{
			name:         "explicit_separator",
			content:      "alpha beta\ngamma",
			find:         "beta",
			replace:      "BETA",
			separator:    " ",
			want:         "alpha BETA gamma",
			wantCount:    1,
			wantTokens:   3,
			wantModified: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replacer := &TokenReplacer{Find: tt.find, Replace: tt.replace, Separator: tt.separator}
			result, err := replacer.Rewrite(context.Background(), strings.NewReader(tt.content))

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantTokens, result.Tokens)
			assert.Equal(t, tt.wantModified, result.WasModified)
		})
	}
}

func TestTokenReplacer_Idempotent(t *testing.T) {
	inputs := []string{
		"alpha beta gamma beta",
		"  beta\n\tbeta  ",
		"betabeta beta",
		"",
	}

	replacer := NewTokenReplacer("beta", "BETA")
	for _, in := range inputs {
		once := replacer.RewriteString(in)
		twice := replacer.RewriteString(once)
		assert.Equal(t, once, twice, "rewriting %q twice should match rewriting once", in)
	}
}

func TestTokenReplacer_PreservesOrder(t *testing.T) {
	replacer := &TokenReplacer{Find: "W", Replace: "R", Separator: "\n"}
	got := replacer.RewriteString("a W b\nW\tc W")
	assert.Equal(t, []string{"a", "R", "b", "R", "c", "R"}, strings.Split(got, "\n"))
}

func TestTokenReplacer_Validate(t *testing.T) {
	tests := []struct {
		name      string
		find      string
		wantError string
	}{
		{name: "valid", find: "foo"},
		{name: "empty_find", find: "", wantError: "find text is required"},
		{name: "whitespace_in_find", find: "foo bar", wantError: "contains whitespace"},
		{name: "newline_in_find", find: "foo\n", wantError: "contains whitespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewTokenReplacer(tt.find, "x").Validate()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
