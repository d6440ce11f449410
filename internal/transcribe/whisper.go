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

// Package transcribe turns a video file into a structured transcript by
// driving the Whisper command-line tool.
//
// Logic Flow:
//  1. Validate that the input really is a video file by sniffing its
//     magic bytes, so a bad path fails fast instead of after a long
//     Whisper run.
//  2. Invoke the Whisper binary with the configured model and language,
//     asking it to emit JSON into the run's output directory. The run is
//     bounded by a context deadline from the configuration.
//  3. Parse Whisper's JSON output into segments, derive chapter markers
//     from segments that start at least thirty seconds after the previous
//     chapter, and compute the total duration.
//  4. Persist the transcript in three shapes: machine-readable JSON, the
//     plain text, and a human-readable timestamped listing.
package transcribe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// headerSniffLen is the number of leading bytes the filetype matcher
// needs to identify a container format.
const headerSniffLen = 261

// Transcriber runs Whisper against a single video file.
type Transcriber struct {
	cfg config.Whisper
}

// NewTranscriber builds a Transcriber from the Whisper configuration.
func NewTranscriber(cfg config.Whisper) *Transcriber {
	return &Transcriber{cfg: cfg}
}

// Transcribe runs Whisper on videoPath, writing its raw output and the
// derived transcript files into outputDir.
//
// Inputs:
//   - ctx: Caller context. A timeout from the configuration is layered
//     on top of it.
//   - videoPath: Path to the source video file.
//   - outputDir: Directory that receives transcript.json, transcript.txt
//     and transcript_timestamps.txt.
//
// Outputs:
//   - *model.Transcript: The structured transcript.
//   - error: Non-nil when validation, the Whisper run, or parsing fails.
func (t *Transcriber) Transcribe(ctx context.Context, videoPath string, outputDir string) (*model.Transcript, error) {
	if err := ValidateVideoFile(videoPath); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	timeout := time.Duration(t.cfg.TimeoutInSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Info("starting transcription",
		slog.String("video", filepath.Base(videoPath)),
		slog.String("model", t.cfg.Model),
		slog.String("language", t.cfg.Language))

	cmd := exec.CommandContext(runCtx, t.cfg.BinaryPath,
		videoPath,
		"--model", t.cfg.Model,
		"--language", t.cfg.Language,
		"--task", "transcribe",
		"--output_format", "json",
		"--output_dir", outputDir,
	)
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("whisper timed out after %s: %w", timeout, err)
		}
		return nil, fmt.Errorf("whisper failed: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	rawPath := filepath.Join(outputDir, stem+".json")
	transcript, err := ParseWhisperFile(rawPath)
	if err != nil {
		return nil, err
	}

	if err := SaveTranscript(transcript, outputDir); err != nil {
		return nil, err
	}

	slog.Info("transcription complete",
		slog.String("video", filepath.Base(videoPath)),
		slog.Int("segments", len(transcript.Segments)),
		slog.Float64("duration", transcript.Duration))
	return transcript, nil
}

// ValidateVideoFile checks that the path exists and carries a recognized
// video container signature.
func ValidateVideoFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open video file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close video file", slog.Any("error", err))
		}
	}()

	head := make([]byte, headerSniffLen)
	n, err := file.Read(head)
	if err != nil {
		return fmt.Errorf("failed to read video header: %w", err)
	}
	if !filetype.IsVideo(head[:n]) {
		return fmt.Errorf("%q is not a recognized video file", path)
	}
	return nil
}
