// Copyright 2025, Shiki0138
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cor (Chain of Responsibility) provides the building blocks for
// assembling the content pipeline as a sequence of commands. This file
// defines the core interfaces of the pattern. Each pipeline stage
// (transcription, analysis, article generation, channel formatting,
// rendering) is an independent Command; the workflow package composes
// them into Chains.
package cor

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CtxIn and CtxOut are the reserved keys that carry the primary data flow
// through a BaseChain.
const (
	// CtxIn is the default key a command reads its primary input from. A
	// BaseChain fills it with the previous command's output.
	CtxIn = "__IN__"
	// CtxOut is the default key a command writes its primary output to. A
	// BaseChain moves it to CtxIn before running the next command.
	CtxOut = "__OUT__"
)

// Context is the shared state object passed through a chain of commands.
// It is a property bag for a single pipeline run, carrying data, errors,
// and temporary-file bookkeeping between commands.
type Context interface {
	// SetContext sets the standard Go context.Context, used for
	// cancellation and OpenTelemetry span propagation.
	SetContext(context context.Context)

	// GetContext retrieves the standard Go context.Context.
	GetContext() context.Context

	// Add stores a key-value pair. Returns the Context for fluent chaining.
	Add(key string, value interface{}) Context

	// AddError records an error keyed by the name of the command that
	// produced it.
	AddError(key string, err error)

	// GetErrors returns every error recorded during the run.
	GetErrors() map[string]error

	// Get retrieves a value by key, or nil when absent.
	Get(key string) interface{}

	// Remove deletes a key-value pair.
	Remove(key string)

	// HasErrors reports whether any command has recorded an error.
	HasErrors() bool

	// AddTempFile tracks a temporary file for removal on Close.
	AddTempFile(file string)

	// GetTempFiles returns every tracked temporary file path.
	GetTempFiles() []string

	// Close removes tracked temporary files. Defer it when starting a run.
	Close()
}

// Executable is any object with a core execution step.
type Executable interface {
	// Execute runs the object's business logic against the shared Context,
	// reading inputs from it and writing outputs back to it.
	Execute(context Context)
}

// Command is an atomic, testable unit of pipeline work.
type Command interface {
	Executable

	// GetName returns the command's unique name, used in logs, telemetry,
	// and the context error map.
	GetName() string

	// GetInputParam returns the context key this command reads its primary
	// input from.
	GetInputParam() string

	// GetOutputParam returns the context key this command writes its
	// primary output to.
	GetOutputParam() string

	// IsExecutable reports whether the command's preconditions hold for
	// the current Context state.
	IsExecutable(context Context) bool

	// GetTracer returns the OpenTelemetry tracer for this command.
	GetTracer() trace.Tracer

	// GetMeter returns the OpenTelemetry meter for this command.
	GetMeter() metric.Meter

	// GetSuccessCounter returns the counter incremented on success.
	GetSuccessCounter() metric.Int64Counter

	// GetErrorCounter returns the counter incremented on failure.
	GetErrorCounter() metric.Int64Counter
}

// Chain is an ordered sequence of commands. A Chain is itself a Command,
// so chains nest (Composite pattern): the full pipeline is one outer chain
// whose members may themselves be chains.
type Chain interface {
	Command

	// ContinueOnFailure configures whether the chain keeps executing
	// subsequent commands after one records an error.
	ContinueOnFailure(bool) Chain

	// AddCommand appends a command to the execution sequence.
	AddCommand(command Command) Chain
}
