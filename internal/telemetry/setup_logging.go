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

// Package telemetry wires structured logging and tracing for the
// application. Logs are emitted as JSON to both stdout and a local
// app.log file, and every log record carries the active trace and span
// identifiers so log lines can be correlated with pipeline spans.
package telemetry

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

const logFileName = "app.log"

// spanContextLogHandler is an slog.Handler decorator that injects the
// current span context into every record it handles.
type spanContextLogHandler struct {
	slog.Handler
}

func withSpanContext(handler slog.Handler) *spanContextLogHandler {
	return &spanContextLogHandler{Handler: handler}
}

// Handle overrides slog.Handler to attach trace correlation attributes
// before delegating to the wrapped handler.
func (t *spanContextLogHandler) Handle(ctx context.Context, record slog.Record) error {
	if s := trace.SpanContextFromContext(ctx); s.IsValid() {
		record.AddAttrs(
			slog.Any("trace_id", s.TraceID()),
			slog.Any("span_id", s.SpanID()),
			slog.Bool("trace_sampled", s.TraceFlags().IsSampled()),
		)
	}
	return t.Handler.Handle(ctx, record)
}

// SetupLogging configures the default slog logger to write JSON records
// to stdout and app.log, with span context injection. It also sets the
// standard log package prefix so stray log calls remain identifiable.
func SetupLogging() {
	log.SetPrefix("[INFO] ")

	writers := []io.Writer{os.Stdout}
	logFile, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("could not open log file, logging to stdout only", "error", err)
	} else {
		writers = append(writers, logFile)
	}

	handler := withSpanContext(slog.NewJSONHandler(io.MultiWriter(writers...), nil))
	slog.SetDefault(slog.New(handler))
}
