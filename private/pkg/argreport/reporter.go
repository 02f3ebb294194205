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

package argreport

import (
	"context"
	"fmt"
	"io"

	"github.com/bufbuild/echoargs/private/pkg/app/applog"
	"go.uber.org/zap"
)

type reporter struct {
	logger *zap.Logger
}

func newReporter(logger *zap.Logger) *reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reporter{
		logger: logger,
	}
}

func (r *reporter) Report(_ context.Context, writer io.Writer, args []string) (retErr error) {
	defer applog.DeferWithError(r.logger, "report", &retErr, zap.Int("num_args", len(args)))()
	for i, arg := range args {
		if err := writeLine(writer, FormatLine(i, arg)); err != nil {
			r.logger.Warn(
				"report failed",
				zap.Int("num_args", len(args)),
				zap.Int("index", i),
				zap.Error(err),
			)
			return fmt.Errorf("write argv[%d]: %w", i, err)
		}
	}
	return nil
}

// writeLine writes the whole line in one call.
func writeLine(writer io.Writer, line string) error {
	n, err := io.WriteString(writer, line)
	if err != nil {
		return err
	}
	if n != len(line) {
		return io.ErrShortWrite
	}
	return nil
}
