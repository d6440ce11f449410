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
// the full video-to-content workflow: one video in, a run directory of
// artifacts out (transcript, article, description, social posts,
// thumbnail text, images, metadata).
package workflow

import (
	goctx "context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/commands"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/render"
	"github.com/Shiki0138/video-content-system/internal/imagegen"
	"github.com/Shiki0138/video-content-system/internal/transcribe"
)

var logger = otelslog.NewLogger("workflow")

// batchExtensions are the video file types picked up in batch mode.
var batchExtensions = []string{".mp4", ".mov", ".avi"}

// ContentWorkflow orchestrates the full content generation run. It owns
// the chain of pipeline commands and the run directory layout.
type ContentWorkflow struct {
	cor.BaseCommand
	cfg   *config.Config
	chain cor.Chain
}

// NewContentWorkflow is the constructor for the ContentWorkflow. It
// builds every stage from the configuration and assembles the chain.
//
// Inputs:
//   - cfg: The application's overall configuration object.
//   - rng: Randomness source for the image prompt decorations. Pass a
//     seeded source in tests for reproducible prompts.
//
// Outputs:
//   - *ContentWorkflow: A pointer to a newly created and fully
//     initialized workflow.
func NewContentWorkflow(cfg *config.Config, rng *rand.Rand) *ContentWorkflow {
	out := &ContentWorkflow{
		BaseCommand: *cor.NewBaseCommand("content-workflow"),
		cfg:         cfg,
	}
	out.initializeChain(rng)
	return out
}

// initializeChain constructs the command sequence of the run. Order
// matters: the article must exist before any channel formatting, and
// metadata runs last so it can list every produced artifact.
func (w *ContentWorkflow) initializeChain(rng *rand.Rand) {
	out := cor.NewBaseChain(w.GetName())

	out.AddCommand(commands.NewTranscribeCommand("transcribe", transcribe.NewTranscriber(w.cfg.Whisper)))
	out.AddCommand(commands.NewArticleCommand("article", article.NewOptimizer()))
	out.AddCommand(commands.NewRenderCommand("render", render.NewWriter(w.cfg.Blog)))
	out.AddCommand(commands.NewYouTubeCommand("youtube-description", channels.NewDescriptionFormatter(w.cfg.YouTube)))
	out.AddCommand(commands.NewSocialCommand("social-posts", channels.NewSocialFormatter(w.cfg.Social)))
	out.AddCommand(commands.NewThumbnailCommand("thumbnail-text"))
	out.AddCommand(commands.NewImageCommand("images", channels.NewPromptGenerator(rng), imagegen.NewClient(w.cfg.ImageAPI)))
	out.AddCommand(commands.NewMetadataCommand("metadata"))

	w.chain = out
}

// Execute runs the workflow by invoking the underlying command chain.
func (w *ContentWorkflow) Execute(context cor.Context) {
	w.chain.Execute(context)
}

// ProcessVideo runs the whole pipeline for one video.
//
// Inputs:
//   - ctx: Caller context, propagated through every stage.
//   - videoPath: Path to the source video.
//   - title: Display title. When empty, a title is derived from the
//     file name.
//
// Outputs:
//   - *model.RunMetadata: The run summary, also persisted as
//     metadata.json in the run directory.
//   - error: The first stage error when the run failed.
func (w *ContentWorkflow) ProcessVideo(ctx goctx.Context, videoPath string, title string) (*model.RunMetadata, error) {
	if _, err := os.Stat(videoPath); err != nil {
		return nil, fmt.Errorf("video file not found: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	if title == "" {
		title = TitleFromStem(stem)
	}

	outputDir := filepath.Join(w.cfg.Application.OutputBaseDir,
		fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), stem))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	state := &commands.RunState{
		RunID:     uuid.New().String(),
		VideoPath: videoPath,
		Title:     title,
		OutputDir: outputDir,
		StartedAt: time.Now(),
	}

	logger.InfoContext(ctx, "starting run",
		"run_id", state.RunID,
		"video", filepath.Base(videoPath),
		"title", title)

	tracer := otel.Tracer(w.GetName())
	traceCtx, span := tracer.Start(ctx, "content-run")
	defer span.End()

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(traceCtx)
	chainCtx.Add(cor.CtxIn, state)
	defer chainCtx.Close()

	w.Execute(chainCtx)

	if chainCtx.HasErrors() {
		span.SetStatus(codes.Error, "content run failed")
		errs := make([]error, 0, len(chainCtx.GetErrors()))
		for name, err := range chainCtx.GetErrors() {
			logger.ErrorContext(ctx, "stage failed", "stage", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return nil, errors.Join(errs...)
	}

	span.SetStatus(codes.Ok, "content run complete")
	logger.InfoContext(ctx, "run complete",
		"run_id", state.RunID,
		"output_dir", outputDir,
		"sections", state.Metadata.Stats.SectionCount)
	return state.Metadata, nil
}

// ProcessBatch runs the pipeline over every video in dir. A failing
// video is logged and skipped so the rest of the batch still runs.
// Returns the metadata of the successful runs.
func (w *ContentWorkflow) ProcessBatch(ctx goctx.Context, dir string) ([]*model.RunMetadata, error) {
	var videos []string
	for _, ext := range batchExtensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, fmt.Errorf("failed to scan %q: %w", dir, err)
		}
		videos = append(videos, matches...)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("no videos found in %q", dir)
	}

	logger.InfoContext(ctx, "starting batch", "dir", dir, "videos", len(videos))

	var results []*model.RunMetadata
	for _, video := range videos {
		metadata, err := w.ProcessVideo(ctx, video, "")
		if err != nil {
			logger.ErrorContext(ctx, "batch item failed",
				"video", filepath.Base(video), "error", err)
			continue
		}
		results = append(results, metadata)
	}
	return results, nil
}

// TitleFromStem derives a display title from a video file name stem:
// separators become spaces and each word is title-cased.
func TitleFromStem(stem string) string {
	title := strings.NewReplacer("_", " ", "-", " ").Replace(stem)
	return cases.Title(language.Und).String(title)
}
