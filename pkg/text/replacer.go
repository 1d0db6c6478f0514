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
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📝 RewriteResult holds the outcome of rewriting one piece of content
type RewriteResult struct {
	OriginalContent  []byte // Content as read
	ModifiedContent  []byte // Tokens rejoined after substitution
	Tokens           int    // Number of tokens seen
	ReplacementCount int    // Number of tokens replaced
	WasModified      bool   // Whether ModifiedContent differs from OriginalContent
}

// 🔄 TokenReplacer substitutes whole tokens equal to Find with Replace.
//
// The rewritten content is the token stream joined with Separator. Separator
// defaults to the empty string, which drops all original whitespace; any
// content, matched or not, can therefore change on rewrite.
type TokenReplacer struct {
	Find      string
	Replace   string
	Separator string
}

// NewTokenReplacer creates a TokenReplacer that joins tokens with no separator
func NewTokenReplacer(find, replace string) *TokenReplacer {
	return &TokenReplacer{
		Find:    find,
		Replace: replace,
	}
}

// Validate checks that Find can match a token at all
func (r *TokenReplacer) Validate() error {
	if r.Find == "" {
		return errors.Errorf("find text is required")
	}
	if strings.IndexFunc(r.Find, IsSpace) >= 0 {
		return errors.Errorf("find text %q contains whitespace and can never match a token", r.Find)
	}
	return nil
}

// Rewrite reads all of content and rewrites its token stream
func (r *TokenReplacer) Rewrite(ctx context.Context, content io.Reader) (*RewriteResult, error) {
	original, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	modified, tokens, count := r.rewrite(string(original))

	zerolog.Ctx(ctx).Trace().
		Int("tokens", tokens).
		Int("replacements", count).
		Msg("rewrote token stream")

	return &RewriteResult{
		OriginalContent:  original,
		ModifiedContent:  []byte(modified),
		Tokens:           tokens,
		ReplacementCount: count,
		WasModified:      !bytes.Equal(original, []byte(modified)),
	}, nil
}

// RewriteString is Rewrite for in-memory content
func (r *TokenReplacer) RewriteString(content string) string {
	modified, _, _ := r.rewrite(content)
	return modified
}

func (r *TokenReplacer) rewrite(content string) (string, int, int) {
	tokens := Tokenize(content)

	var b strings.Builder
	b.Grow(len(content))

	count := 0
	for i, token := range tokens {
		if i > 0 {
			b.WriteString(r.Separator)
		}
		if token == r.Find {
			b.WriteString(r.Replace)
			count++
			continue
		}
		b.WriteString(token)
	}

	return b.String(), len(tokens), count
}
