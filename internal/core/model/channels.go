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

// This file contains per-channel output types. Each is derived
// independently from the Transcript and BlogContent, written once, and
// shares no mutable state with the others.
package model

// ThumbnailText is the text overlay for a generated thumbnail.
type ThumbnailText struct {
	Title    string   `json:"title"`    // Truncated to 15 chars + ellipsis when longer.
	Subtitle string   `json:"subtitle"` // Derived from the top keyword or a static fallback.
	Keywords []string `json:"keywords"`
}

// SocialPosts holds the five template variations plus the optional
// multi-part thread, keyed and ordered by style.
type SocialPosts struct {
	Variations map[string]string `json:"variations"`
	Thread     []string          `json:"thread,omitempty"`
}

// VideoInfo is the probe result for the source video. A failed probe
// degrades to the zero value rather than aborting the run.
type VideoInfo struct {
	Duration    float64 `json:"duration"`     // Seconds.
	DurationStr string  `json:"duration_str"` // Human form, e.g. "12分30秒".
	Size        int64   `json:"size"`         // Bytes.
	Format      string  `json:"format"`       // Container format name, "unknown" when unprobed.
}

// GeneratedImage records one successful image-generation task.
type GeneratedImage struct {
	TaskID   string `json:"task_id"`  // UUID sent to the image API.
	Strategy string `json:"strategy"` // Prompt strategy: impact/curiosity/authority or featured/section.
	Path     string `json:"path"`     // Local file the image was saved to.
	Prompt   string `json:"prompt"`   // Prompt text used for generation.
}

// RunOutputs lists every artifact a pipeline run produced, persisted as
// part of metadata.json.
type RunOutputs struct {
	Article     string   `json:"article"`
	YouTube     string   `json:"youtube"`
	SocialPosts string   `json:"social_posts"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Transcript  string   `json:"transcript"`
	Images      []string `json:"images,omitempty"`
}

// RunStats summarizes a pipeline run for metadata.json.
type RunStats struct {
	Duration       float64 `json:"duration"`
	CharCount      int     `json:"char_count"`
	SectionCount   int     `json:"section_count"`
	VariationCount int     `json:"variation_count"`
}

// RunMetadata is the metadata.json document written at the end of a run.
type RunMetadata struct {
	RunID       string      `json:"run_id"` // UUID assigned at run start.
	Title       string      `json:"title"`
	VideoPath   string      `json:"video_path"`
	ProcessedAt string      `json:"processed_at"` // RFC 3339.
	OutputDir   string      `json:"output_dir"`
	Video       *VideoInfo  `json:"video,omitempty"` // Absent when the probe failed.
	Files       *RunOutputs `json:"files"`
	Stats       *RunStats   `json:"stats"`
}
