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

import "strings"

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// CountSegments returns the number of newline-separated segments in content.
// "\r\n" and a lone "\r" count as newlines. A trailing newline produces an
// extra, empty segment and empty content is one segment.
func CountSegments(content string) int {
	return strings.Count(newlines.Replace(content), "\n") + 1
}
