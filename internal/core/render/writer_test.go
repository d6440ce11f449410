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

// Package render_test contains unit tests for the post renderer: file
// naming, front matter, body structure, anchors, and inline formatting.
package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter() *render.Writer {
	cfg := config.Blog{
		Layout:     "post",
		Author:     "Video Bot",
		Categories: []string{"video", "blog"},
	}
	clock := func() time.Time {
		return time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
	}
	return render.NewWriterAt(cfg, clock)
}

func sampleBlog() *model.BlogContent {
	return &model.BlogContent{
		Title:           "動画から記事を作る",
		Slug:            "post-20250901103000",
		MetaDescription: "説明文です。",
		Introduction:    "最初の段落です。\n\n次の段落です。",
		Sections: []*model.Section{
			{Title: "課題", Content: "編集は**大変**です。", Type: model.SectionProblem},
			{Title: "解決策", Content: "1. 文字起こし\n2. リライト", Type: model.SectionSolution},
			{Title: "メリット", Content: "- 時短\n- 無料", Type: model.SectionBenefits},
		},
		Conclusion: "## まとめ\n\n以上です。",
		Keywords:   []string{"動画", "編集"},
		TargetAudience: &model.TargetAudience{
			Primary: model.AudienceCreator,
		},
		ReadingTime: 3,
		MainPoints:  []*model.MainPoint{{Text: "要点その一"}},
	}
}

// TestWritePost verifies the file name, front matter fields, and body
// structure of a rendered post.
func TestWritePost(t *testing.T) {
	dir := t.TempDir()
	path, err := testWriter().WritePost(sampleBlog(), dir)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-01-post-20250901103000.md", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "layout: post")
	assert.Contains(t, content, "title: 動画から記事を作る")
	assert.Contains(t, content, "2025-09-01 10:30:00 +0000")
	assert.Contains(t, content, "author: Video Bot")
	assert.Contains(t, content, "published: true")
	assert.Contains(t, content, "reading_time: 3")

	assert.Contains(t, content, "<p>最初の段落です。</p>")
	assert.Contains(t, content, "<p>次の段落です。</p>")
	assert.Contains(t, content, "<p>編集は<strong>大変</strong>です。</p>")
	assert.Contains(t, content, "  <li>文字起こし</li>")
	assert.Contains(t, content, "  <li>時短</li>")
	assert.Contains(t, content, "<h2>まとめ</h2>")
	assert.Contains(t, content, "<p>以上です。</p>")
	assert.Contains(t, content, "<dd>動画クリエイター・YouTuber</dd>")
	assert.Contains(t, content, "<dd>約3分</dd>")
	assert.Contains(t, content, "<dd>2025年09月01日</dd>")
	assert.Contains(t, content, "  <li>要点その一</li>")
}

// TestWritePostTableOfContents verifies the TOC emission rule: only when
// the article carries more than two sections.
func TestWritePostTableOfContents(t *testing.T) {
	dir := t.TempDir()
	w := testWriter()

	blog := sampleBlog()
	path, err := w.WritePost(blog, dir)
	require.NoError(t, err)
	raw, _ := os.ReadFile(path)
	assert.Contains(t, string(raw), "<h2>目次</h2>")

	blog.Sections = blog.Sections[:2]
	blog.Slug = "post-two-sections"
	path, err = w.WritePost(blog, dir)
	require.NoError(t, err)
	raw, _ = os.ReadFile(path)
	assert.NotContains(t, string(raw), "目次")
}

// TestAnchor verifies ASCII slugging and the hash fallback for headings
// that reduce to nothing.
func TestAnchor(t *testing.T) {
	assert.Equal(t, "getting-started", render.Anchor("Getting Started"))
	assert.Equal(t, "step-1-setup", render.Anchor("Step 1: Setup"))

	japanese := render.Anchor("課題")
	assert.True(t, strings.HasPrefix(japanese, "section-"))
	assert.Equal(t, len("section-")+8, len(japanese))
	// Stable across calls.
	assert.Equal(t, japanese, render.Anchor("課題"))
}

// TestInlineFormat verifies the bold and emphasis conversions.
func TestInlineFormat(t *testing.T) {
	assert.Equal(t, "a <strong>b</strong> c", render.InlineFormat("a **b** c"))
	assert.Equal(t, "a <em>b</em> c", render.InlineFormat("a *b* c"))
	assert.Equal(t, "<strong>太字</strong>と<em>斜体</em>", render.InlineFormat("**太字**と*斜体*"))
}
