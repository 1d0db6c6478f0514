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
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrMalformedListing is returned (wrapped in a TraversalError) when a Scanner
// produces a listing that does not describe the directory that was asked for.
var ErrMalformedListing = errors.Base("malformed directory listing")

// 📂 Listing is the result of scanning a single directory
type Listing struct {
	Dir     string   // Directory that was scanned, exactly as requested
	SubDirs []string // Names of sub-directories directly inside Dir
	Files   []string // Names of non-directory entries directly inside Dir
}

// 🔌 Scanner lists the immediate contents of one directory
type Scanner interface {
	Scan(ctx context.Context, dir string) (Listing, error)
}

// 🗂️ OSScanner is the default Scanner backed by os.ReadDir
type OSScanner struct{}

// NewOSScanner creates a new OSScanner
func NewOSScanner() *OSScanner {
	return &OSScanner{}
}

// Scan implements Scanner.Scan
func (s *OSScanner) Scan(ctx context.Context, dir string) (Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Listing{}, errors.Errorf("reading directory %s: %w", dir, err)
	}

	listing := Listing{Dir: dir}
	for _, entry := range entries {
		switch {
		case entry.IsDir():
			listing.SubDirs = append(listing.SubDirs, entry.Name())
		case entry.Type()&fs.ModeSymlink != 0 && isDirLink(dir, entry.Name()):
			// links to directories are neither files nor followed
			zerolog.Ctx(ctx).Debug().Str("dir", dir).Str("link", entry.Name()).Msg("skipping directory symlink")
		default:
			listing.Files = append(listing.Files, entry.Name())
		}
	}

	return listing, nil
}

// isDirLink reports whether the symlink name in dir resolves to a directory.
// Dangling links resolve to nothing and stay files.
func isDirLink(dir, name string) bool {
	info, err := os.Stat(joinPath(dir, name))
	return err == nil && info.IsDir()
}

// 🚨 TraversalError reports a listing whose shape cannot be trusted
type TraversalError struct {
	Dir    string // Directory that was being scanned
	Reason string // What was wrong with the listing
}

func (e *TraversalError) Error() string {
	return "traversing " + e.Dir + ": " + ErrMalformedListing.Error() + ": " + e.Reason
}

func (e *TraversalError) Unwrap() error {
	return ErrMalformedListing
}

// 🔍 Validate checks that the listing describes dir and that every entry is a
// single path element appearing at most once
func (l Listing) Validate(dir string) error {
	if l.Dir != dir {
		return &TraversalError{Dir: dir, Reason: "listing is for " + strconv.Quote(l.Dir)}
	}

	seen := make(map[string]struct{}, len(l.SubDirs)+len(l.Files))
	check := func(kind, name string) error {
		switch {
		case name == "":
			return &TraversalError{Dir: dir, Reason: "empty " + kind + " name"}
		case name == "." || name == "..":
			return &TraversalError{Dir: dir, Reason: kind + " name " + strconv.Quote(name) + " is not an entry"}
		case strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator):
			return &TraversalError{Dir: dir, Reason: kind + " name " + strconv.Quote(name) + " contains a path separator"}
		}
		if _, dup := seen[name]; dup {
			return &TraversalError{Dir: dir, Reason: "entry " + strconv.Quote(name) + " listed more than once"}
		}
		seen[name] = struct{}{}
		return nil
	}

	for _, name := range l.SubDirs {
		if err := check("directory", name); err != nil {
			return err
		}
	}
	for _, name := range l.Files {
		if err := check("file", name); err != nil {
			return err
		}
	}

	return nil
}
