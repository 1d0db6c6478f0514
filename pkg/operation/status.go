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

// 📊 FileStatus is what a rewrite did to a file
type FileStatus int

const (
	StatusUnknown     FileStatus = iota
	StatusRewritten              // At least one token was replaced
	StatusReformatted            // No token replaced, but rejoining changed the bytes
	StatusUnchanged              // Content written back byte-identical
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusReformatted:
		return "reformatted"
	case StatusUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

func statusOf(replacements int, modified bool) FileStatus {
	switch {
	case replacements > 0:
		return StatusRewritten
	case modified:
		return StatusReformatted
	default:
		return StatusUnchanged
	}
}
