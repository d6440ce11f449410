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

// This file tests the image prompt generator: the three thumbnail
// strategies, overlay decoration determinism under a seeded source, and
// the section prompt cap.
package channels_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func seededGenerator(seed int64) *channels.PromptGenerator {
	return channels.NewPromptGenerator(rand.New(rand.NewSource(seed)))
}

// TestThumbnailPrompts verifies the three strategies in order, each with
// the title embedded in both the prompt and the decorated overlay.
func TestThumbnailPrompts(t *testing.T) {
	g := seededGenerator(1)
	transcript := &model.Transcript{Text: "動画 編集 自動化"}

	prompts := g.ThumbnailPrompts("編集の自動化", transcript)
	assert.Equal(t, 3, len(prompts))
	assert.Equal(t, "impact", prompts[0].Strategy)
	assert.Equal(t, "curiosity", prompts[1].Strategy)
	assert.Equal(t, "authority", prompts[2].Strategy)

	for _, p := range prompts {
		assert.Contains(t, p.Prompt, "編集の自動化")
		assert.Contains(t, p.OverlayTitle, "編集の自動化")
		assert.NotEmpty(t, p.Name)
	}
}

// TestThumbnailPromptsDeterministic verifies that the same seed yields
// the same overlay decorations.
func TestThumbnailPromptsDeterministic(t *testing.T) {
	transcript := &model.Transcript{Text: "動画 編集"}

	first := seededGenerator(42).ThumbnailPrompts("タイトル", transcript)
	second := seededGenerator(42).ThumbnailPrompts("タイトル", transcript)
	for i := range first {
		assert.Equal(t, first[i].OverlayTitle, second[i].OverlayTitle)
	}
}

// TestFeaturedPrompt verifies the keyword theme and its default.
func TestFeaturedPrompt(t *testing.T) {
	g := seededGenerator(1)

	withKeywords := g.FeaturedPrompt("タイトル", &model.BlogContent{
		Keywords: []string{"動画", "編集", "自動化", "余り"},
	})
	assert.Contains(t, withKeywords, "動画, 編集, 自動化")
	assert.NotContains(t, withKeywords, "余り")

	bare := g.FeaturedPrompt("タイトル", &model.BlogContent{})
	assert.Contains(t, bare, "technology and innovation")
}

// TestSectionPrompts verifies the three-section cap, the one-based
// index, and the concept truncation.
func TestSectionPrompts(t *testing.T) {
	g := seededGenerator(1)

	sections := []*model.Section{
		{Title: "一", Content: strings.Repeat("あ", 150)},
		{Title: "二", Content: "短い"},
		{Title: "三", Content: "短い"},
		{Title: "四", Content: "短い"},
	}

	prompts := g.SectionPrompts(sections)
	assert.Equal(t, 3, len(prompts))
	assert.Equal(t, 1, prompts[0].Index)
	assert.Equal(t, "一", prompts[0].Section)
	assert.Contains(t, prompts[0].Prompt, strings.Repeat("あ", 100)+"...")
	assert.NotContains(t, prompts[0].Prompt, strings.Repeat("あ", 101))
}
