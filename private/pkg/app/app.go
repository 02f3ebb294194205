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

// Package app provides application primitives.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// ArgContainer provides the arguments.
type ArgContainer interface {
	// NumArgs gets the number of arguments.
	NumArgs() int
	// Arg gets the ith argument.
	//
	// Panics if i < 0 || i >= NumArgs().
	Arg(i int) string
}

// NewArgContainer returns a new ArgContainer.
func NewArgContainer(args ...string) ArgContainer {
	return newArgContainer(args)
}

// StdoutContainer provides stdout.
type StdoutContainer interface {
	// Stdout provides stdout.
	//
	// If nil was passed when the Container was constructed, this returns io.Discard.
	Stdout() io.Writer
}

// StderrContainer provides stderr.
type StderrContainer interface {
	// Stderr provides stderr.
	//
	// If nil was passed when the Container was constructed, this returns io.Discard.
	Stderr() io.Writer
}

// Container contains the process plumbing an application runs against.
type Container interface {
	StdoutContainer
	StderrContainer
	ArgContainer
}

// NewContainer returns a new Container.
//
// The first argument is conventionally the invocation name.
func NewContainer(
	stdout io.Writer,
	stderr io.Writer,
	args ...string,
) Container {
	return newContainer(stdout, stderr, NewArgContainer(args...))
}

// NewContainerForOS returns a new Container for the operating system.
func NewContainerForOS() Container {
	return NewContainer(
		os.Stdout,
		os.Stderr,
		os.Args...,
	)
}

// Args returns all arguments.
//
// The returned slice is a copy and may be modified by the caller.
func Args(argList ArgContainer) []string {
	numArgs := argList.NumArgs()
	args := make([]string, numArgs)
	for i := 0; i < numArgs; i++ {
		args[i] = argList.Arg(i)
	}
	return args
}

// Main runs the application using the OS Container and calling os.Exit on the return value of Run.
func Main(ctx context.Context, f func(context.Context, Container) error) {
	os.Exit(GetExitCode(Run(ctx, NewContainerForOS(), f)))
}

// Run runs the application using the container.
//
// A non-empty error is printed to the container's stderr.
// The exit code can be determined using GetExitCode.
func Run(ctx context.Context, container Container, f func(context.Context, Container) error) error {
	if err := f(ctx, container); err != nil {
		printError(container, err)
		return err
	}
	return nil
}

// NewError returns a new Error that contains an exit code.
//
// The exit code cannot be 0.
func NewError(exitCode int, message string) error {
	return newAppError(exitCode, errors.New(message))
}

// NewErrorf returns a new error that contains an exit code.
//
// The exit code cannot be 0.
func NewErrorf(exitCode int, format string, args ...interface{}) error {
	return newAppError(exitCode, fmt.Errorf(format, args...))
}

// GetExitCode gets the exit code.
//
// If err == nil, this returns 0.
// If err was created by this package, this returns the exit code from the error.
// Otherwise, this returns 1.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *appError
	if errors.As(err, &appErr) {
		return appErr.exitCode
	}
	return 1
}
