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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/walteh/treetools/cmd/treetools/opts"
)

func main() {
	rootOpts := &opts.RootOpts{}
	rootCmd := newRootCmd(rootOpts)

	configureStyling(os.Stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		reportError(os.Stderr, err, rootOpts.Debug)
		os.Exit(1)
	}
}

// configureStyling turns pterm styling off when stderr is not a terminal
func configureStyling(f *os.File) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		pterm.DisableStyling()
	}
}

// reportError prints a fatal error, with its stack trace when debug is set
func reportError(w io.Writer, err error, debug bool) {
	msg := err.Error()
	if debug {
		msg = fmt.Sprintf("%+v", err)
	}
	fmt.Fprint(w, pterm.Error.Sprintln(msg))
}
