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

package app

import (
	"io"
)

type container struct {
	ArgContainer

	stdout io.Writer
	stderr io.Writer
}

func newContainer(stdout io.Writer, stderr io.Writer, argContainer ArgContainer) *container {
	return &container{
		ArgContainer: argContainer,
		stdout:       writerOrDiscard(stdout),
		stderr:       writerOrDiscard(stderr),
	}
}

func (c *container) Stdout() io.Writer {
	return c.stdout
}

func (c *container) Stderr() io.Writer {
	return c.stderr
}

func writerOrDiscard(writer io.Writer) io.Writer {
	if writer == nil {
		return io.Discard
	}
	return writer
}
