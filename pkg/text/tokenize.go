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
	"strings"
	"unicode"
)

// Tokenize splits content into maximal runs of non-whitespace characters.
// Consecutive separators collapse and leading/trailing whitespace is dropped,
// so the result never contains an empty token.
func Tokenize(content string) []string {
	return strings.FieldsFunc(content, IsSpace)
}

// IsSpace reports whether r separates tokens. On top of unicode.IsSpace it
// treats the ASCII information separators (0x1C-0x1F) as whitespace.
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}
