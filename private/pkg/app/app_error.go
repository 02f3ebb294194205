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
	"errors"
	"fmt"
	"strings"
)

// appError carries the exit code the process should terminate with.
type appError struct {
	exitCode int
	err      error
}

func newAppError(exitCode int, err error) *appError {
	if err == nil {
		err = errors.New("got nil error when constructing appError")
	}
	if exitCode == 0 {
		return &appError{
			exitCode: 1,
			err:      fmt.Errorf("got invalid exit code 0 when constructing appError: %w", err),
		}
	}
	return &appError{
		exitCode: exitCode,
		err:      err,
	}
}

func (e *appError) Error() string {
	if e == nil || e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *appError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// printError writes the error message to stderr followed by a newline.
//
// Nothing is written for an empty message, which lets callers exit
// with a code and no output.
func printError(container StderrContainer, err error) {
	if errString := strings.TrimRight(err.Error(), "\n"); errString != "" {
		_, _ = fmt.Fprintln(container.Stderr(), errString)
	}
}
