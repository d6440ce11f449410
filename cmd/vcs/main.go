// Copyright 2025, Shiki0138
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main is the command-line entry point of the content pipeline.
//
// Usage:
//
//	vcs [flags] <video path>
//
// In single mode the argument is one video file; the run fails loudly on
// any stage error. With -batch the argument is a directory: every
// *.mp4/*.mov/*.avi file is processed, and a failing video is logged and
// skipped so the rest of the batch completes.
//
// The pipeline writes one timestamped run directory per video under the
// configured output base, containing the transcript, the rendered
// article, the video description, social post variations, thumbnail
// text, generated images when enabled, and metadata.json.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/workflow"
	"github.com/Shiki0138/video-content-system/internal/telemetry"
	"github.com/Shiki0138/video-content-system/internal/transcribe"
)

func main() {
	title := flag.String("title", "", "display title for the video (derived from the file name when empty)")
	model := flag.String("model", "", "whisper model override (tiny/base/small/medium/large)")
	batch := flag.Bool("batch", false, "treat the argument as a directory and process every video in it")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <video path>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	telemetry.SetupLogging()

	cfg := config.NewConfig()
	if err := config.Load(cfg); err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	if *model != "" {
		cfg.Whisper.Model = *model
	}

	ctx := context.Background()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	flow := workflow.NewContentWorkflow(cfg, rng)

	if *batch {
		results, err := flow.ProcessBatch(ctx, flag.Arg(0))
		if err != nil {
			slog.Error("batch failed", slog.Any("error", err))
			os.Exit(1)
		}
		slog.Info("batch complete", slog.Int("processed", len(results)))
		return
	}

	metadata, err := flow.ProcessVideo(ctx, flag.Arg(0), *title)
	if err != nil {
		slog.Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
	printSummary(metadata.Title, metadata.OutputDir, metadata.Stats.Duration, metadata.Stats.CharCount, metadata.Stats.SectionCount)
}

// printSummary writes the human-facing run recap to stdout. Everything
// else goes through the structured logger.
func printSummary(title, outputDir string, duration float64, charCount, sections int) {
	fmt.Println("==================================================")
	fmt.Println("処理結果サマリー")
	fmt.Println("==================================================")
	fmt.Printf("タイトル: %s\n", title)
	fmt.Printf("動画時間: %s\n", transcribe.FormatDuration(duration))
	fmt.Printf("文字数: %d文字\n", charCount)
	fmt.Printf("セクション数: %d\n", sections)
	fmt.Printf("出力先: %s\n", outputDir)
	fmt.Println("==================================================")
}
