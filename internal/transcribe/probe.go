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

package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// probeFormat mirrors the "format" object of ffprobe's JSON output.
// Duration and size arrive as strings.
type probeFormat struct {
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	FormatName string `json:"format_name"`
}

type probeResult struct {
	Format probeFormat `json:"format"`
}

// ProbeVideo reads container metadata with ffprobe. The metadata is
// decorative (it feeds the run summary and social posts), so any probe
// failure degrades to zero values instead of failing the run.
func ProbeVideo(ctx context.Context, videoPath string) model.VideoInfo {
	unknown := model.VideoInfo{DurationStr: "0:00", Format: "unknown"}

	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		videoPath,
	)
	out, err := cmd.Output()
	if err != nil {
		slog.Warn("ffprobe failed", slog.String("video", videoPath), slog.Any("error", err))
		return unknown
	}

	var result probeResult
	if err := json.Unmarshal(out, &result); err != nil {
		slog.Warn("ffprobe output unreadable", slog.String("video", videoPath), slog.Any("error", err))
		return unknown
	}

	duration, _ := strconv.ParseFloat(result.Format.Duration, 64)
	size, _ := strconv.ParseInt(result.Format.Size, 10, 64)
	format := result.Format.FormatName
	if format == "" {
		format = "unknown"
	}

	return model.VideoInfo{
		Duration:    duration,
		DurationStr: FormatDuration(duration),
		Size:        size,
		Format:      format,
	}
}

// FormatDuration renders a duration in seconds as a Japanese-style
// human-readable string.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%d秒", int(seconds))
	case seconds < 3600:
		return fmt.Sprintf("%d分%d秒", int(seconds)/60, int(seconds)%60)
	default:
		return fmt.Sprintf("%d時間%d分", int(seconds)/3600, (int(seconds)%3600)/60)
	}
}
