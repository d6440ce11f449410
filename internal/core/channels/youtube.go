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

// Package channels reshapes the analyzed content into per-platform
// outputs: the video-platform description, the social post variations,
// the thumbnail text, and the image generation prompts. Each formatter
// reads the Transcript and BlogContent independently; none share mutable
// state.
//
// This file defines the description formatter. The description is a
// fixed sequence of blocks (title banner, summary, chapters, keywords,
// tags, links); the chapter block is emitted only when chapters exist,
// always led by a synthetic opening entry.
package channels

import (
	"strings"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// DescriptionFormatter builds the video-platform description text.
type DescriptionFormatter struct {
	cfg config.YouTube
}

// NewDescriptionFormatter builds a formatter with the platform settings.
func NewDescriptionFormatter(cfg config.YouTube) *DescriptionFormatter {
	return &DescriptionFormatter{cfg: cfg}
}

// Format assembles the full description. Exceeding the configured max
// length truncates hard with a trailing ellipsis.
func (f *DescriptionFormatter) Format(transcript *model.Transcript, title string) string {
	parts := []string{
		"【" + title + "】",
		"",
		nlp.Summarize(transcript.Text, 200),
		"",
	}

	if f.cfg.AddChapters && len(transcript.Chapters) > 0 {
		parts = append(parts, "▼ チャプター ▼", "0:00 オープニング")
		for _, chapter := range transcript.Chapters {
			parts = append(parts, chapter.Time+" "+chapter.Title)
		}
		parts = append(parts, "")
	}

	if keywords := nlp.ExtractKeywords(transcript.Text, 5); len(keywords) > 0 {
		parts = append(parts, "▼ キーワード ▼", strings.Join(keywords, ", "), "")
	}

	if len(f.cfg.DefaultTags) > 0 {
		tags := make([]string, 0, len(f.cfg.DefaultTags))
		for _, tag := range f.cfg.DefaultTags {
			tags = append(tags, "#"+tag)
		}
		parts = append(parts, "▼ タグ ▼", strings.Join(tags, " "), "")
	}

	parts = append(parts,
		"▼ 関連リンク ▼",
		"ブログ: [ブログURL]",
		"Twitter: [TwitterURL]",
		"",
	)

	description := strings.Join(parts, "\n")

	if max := f.cfg.MaxDescriptionLength; max > 0 {
		runes := []rune(description)
		if len(runes) > max {
			description = string(runes[:max-3]) + "..."
		}
	}
	return description
}
