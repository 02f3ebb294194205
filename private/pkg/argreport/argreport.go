// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package argreport writes argument vectors as indexed lines.
//
// Each argument is written on its own line of the form
//
//	argv[<index>]: <value>
//
// in the order received. Values are never escaped, trimmed, or otherwise
// transformed.
package argreport

import (
	"context"
	"io"
	"strconv"

	"go.uber.org/zap"
)

// Reporter reports argument vectors.
type Reporter interface {
	// Report writes one line per argument to the writer, in ascending index order.
	//
	// An empty args writes nothing. Report stops at the first failed write and
	// returns an error that wraps the write error. The failure is also logged
	// at the warn level. Lines written before the failure are not retracted.
	Report(ctx context.Context, writer io.Writer, args []string) error
}

// NewReporter returns a new Reporter.
//
// If logger is nil, nothing is logged.
func NewReporter(logger *zap.Logger) Reporter {
	return newReporter(logger)
}

// FormatLine returns the line reported for the argument at the given index,
// including the trailing newline.
func FormatLine(index int, value string) string {
	return "argv[" + strconv.Itoa(index) + "]: " + value + "\n"
}
