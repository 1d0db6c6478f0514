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
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Rule widths printed between per-file lines and the summary
const (
	CountRuleWidth   = 39
	ReplaceRuleWidth = 25
)

// 🎯 Logger prints user-facing progress lines and mirrors them into zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger writing progress to console
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

var (
	numberColor = color.New(color.Bold)
	pathColor   = color.New(color.FgCyan)
	ruleColor   = color.New(color.Faint)
	doneColor   = color.New(color.FgGreen)
)

func (l *Logger) println(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, line)
}

// 📝 FoundLines reports the line count of one file
func (l *Logger) FoundLines(path string, lines int) {
	l.println(fmt.Sprintf("found %s lines in %s.", numberColor.Sprint(lines), pathColor.Sprint(path)))
	l.zlog.Debug().Str("file", path).Int("lines", lines).Msg("counted lines")
}

// 📝 LineTotal reports the aggregated line count
func (l *Logger) LineTotal(total, files int) {
	l.println(fmt.Sprintf("found %s lines in %s files.", numberColor.Sprint(total), numberColor.Sprint(files)))
	l.zlog.Debug().Int("lines", total).Int("files", files).Msg("line count complete")
}

// 📝 WorkingOn reports that a file has been rewritten
func (l *Logger) WorkingOn(path string, replacements int) {
	l.println(fmt.Sprintf("working on %s.", pathColor.Sprint(path)))
	l.zlog.Debug().Str("file", path).Int("replacements", replacements).Msg("rewrote file")
}

// 📝 File prints a bare file path
func (l *Logger) File(path string) {
	l.println(path)
}

// 📝 Rule prints a horizontal rule of width dashes
func (l *Logger) Rule(width int) {
	l.println(ruleColor.Sprint(strings.Repeat("-", width)))
}

// 📝 Done prints a closing message
func (l *Logger) Done(msg string) {
	l.println(doneColor.Sprint(msg))
	l.zlog.Debug().Msg(msg)
}
