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

// Package workflow defines the high-level business logic orchestrations,
// combining pipeline commands into coherent chains. This file implements
// the thumbnail-only workflow: it re-runs the thumbnail text and image
// stages against an existing run directory, so thumbnails can be
// regenerated without re-transcribing the video.
package workflow

import (
	goctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/commands"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/imagegen"
	"github.com/Shiki0138/video-content-system/internal/transcribe"
)

// ThumbnailWorkflow regenerates thumbnail text and images for a run
// that already has a transcript on disk.
type ThumbnailWorkflow struct {
	cor.BaseCommand
	cfg   *config.Config
	chain cor.Chain
}

// NewThumbnailWorkflow builds the thumbnail-only chain.
func NewThumbnailWorkflow(cfg *config.Config, rng *rand.Rand) *ThumbnailWorkflow {
	out := &ThumbnailWorkflow{
		BaseCommand: *cor.NewBaseCommand("thumbnail-workflow"),
		cfg:         cfg,
	}

	chain := cor.NewBaseChain(out.GetName())
	chain.AddCommand(commands.NewThumbnailCommand("thumbnail-text"))
	chain.AddCommand(commands.NewImageCommand("images", channels.NewPromptGenerator(rng), imagegen.NewClient(cfg.ImageAPI)))
	out.chain = chain

	return out
}

// Execute runs the workflow by invoking the underlying command chain.
func (w *ThumbnailWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// Regenerate reloads the transcript of an existing run directory,
// rebuilds the article analysis in memory, and re-runs the thumbnail
// stages into the same directory.
func (w *ThumbnailWorkflow) Regenerate(ctx goctx.Context, runDir string, title string) error {
	transcript, err := loadTranscript(runDir)
	if err != nil {
		return err
	}
	if title == "" {
		title = TitleFromStem(filepath.Base(runDir))
	}

	state := &commands.RunState{
		Title:      title,
		OutputDir:  runDir,
		Transcript: transcript,
		Blog:       article.NewOptimizer().Optimize(transcript, title),
	}

	tracer := otel.Tracer(w.GetName())
	traceCtx, span := tracer.Start(ctx, "thumbnail-run")
	defer span.End()

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(traceCtx)
	chainCtx.Add(cor.CtxIn, state)
	defer chainCtx.Close()

	w.Execute(chainCtx)

	if chainCtx.HasErrors() {
		span.SetStatus(codes.Error, "thumbnail run failed")
		errs := make([]error, 0, len(chainCtx.GetErrors()))
		for name, err := range chainCtx.GetErrors() {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return errors.Join(errs...)
	}

	span.SetStatus(codes.Ok, "thumbnail run complete")
	return nil
}

func loadTranscript(runDir string) (*model.Transcript, error) {
	raw, err := os.ReadFile(filepath.Join(runDir, transcribe.TranscriptJSONFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript from %q: %w", runDir, err)
	}
	var transcript model.Transcript
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return nil, fmt.Errorf("invalid transcript in %q: %w", runDir, err)
	}
	return &transcript, nil
}
