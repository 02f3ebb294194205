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

// Package echoargs implements the echoargs command.
//
// echoargs prints every element of its argument vector, including its own
// invocation name, one per line as "argv[<index>]: <value>". It parses no
// flags: "--help" is an argument like any other.
package echoargs

import (
	"context"

	"github.com/bufbuild/echoargs/private/pkg/app"
	"github.com/bufbuild/echoargs/private/pkg/app/applog"
	"github.com/bufbuild/echoargs/private/pkg/argreport"
)

const (
	// Logs only go to stderr, and stdout carries nothing but the report.
	logLevel  = "warn"
	logFormat = "text"
)

// Main is the main.
func Main() {
	app.Main(context.Background(), Run)
}

// Run runs echoargs against the container.
func Run(ctx context.Context, container app.Container) error {
	logger, err := applog.NewLogger(container.Stderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	return run(ctx, applog.NewContainer(container, logger))
}

func run(ctx context.Context, container applog.Container) error {
	return argreport.NewReporter(container.Logger()).Report(
		ctx,
		container.Stdout(),
		app.Args(container),
	)
}
