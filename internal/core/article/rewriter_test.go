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

// This file tests the section rewriter: the per-type strategies, the
// problem-trigger assembly, and the non-empty content contract.
package article_test

import (
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
	"github.com/stretchr/testify/assert"
)

func newRewriter() *article.Rewriter {
	return article.NewRewriter(nlp.NewNormalizer())
}

// TestRewriteContentEmptyInput verifies the placeholder contract: no
// source text still yields visible section content.
func TestRewriteContentEmptyInput(t *testing.T) {
	r := newRewriter()
	analysis := &model.ContentAnalysis{}

	got := r.RewriteContent("", model.SectionProblem, analysis)
	assert.Equal(t, "詳細は動画をご覧ください。", got)
}

// TestRewriteProblemTriggers verifies that trigger phrases in the
// original text become the numbered problem list, in trigger order.
func TestRewriteProblemTriggers(t *testing.T) {
	r := newRewriter()
	analysis := &model.ContentAnalysis{
		OriginalText: "これは自動システムです。編集もサムネールも大変な作業でした。",
	}

	got := r.RewriteContent("編集の話", model.SectionProblem, analysis)
	assert.Contains(t, got, "動画コンテンツクリエイターが直面する共通の課題")
	assert.Contains(t, got, "1. 動画からブログやSNS投稿を作成する作業に多くの時間がかかる")
	assert.Contains(t, got, "2. 動画編集、サムネイル作成、文章執筆など複数の作業が必要")
}

// TestRewriteProblemWithoutTriggers verifies the fall-through: with no
// trigger phrase anywhere, the normalized source text comes back as-is.
func TestRewriteProblemWithoutTriggers(t *testing.T) {
	r := newRewriter()
	analysis := &model.ContentAnalysis{OriginalText: "今日は晴れでした。"}

	got := r.RewriteContent("今日は晴れですね", model.SectionProblem, analysis)
	assert.Equal(t, "今日は晴れです。", got)
}

// TestRewriteStaticSections verifies that the curated solution, benefits,
// how-to, and results blocks are produced for any non-empty input.
func TestRewriteStaticSections(t *testing.T) {
	r := newRewriter()
	analysis := &model.ContentAnalysis{}

	cases := []struct {
		sectionType model.SectionType
		marker      string
	}{
		{model.SectionSolution, "Whisper"},
		{model.SectionBenefits, "時間の大幅な削減"},
		{model.SectionHowTo, "ステップ1"},
		{model.SectionResults, "作業時間の劇的な短縮"},
	}

	for _, tc := range cases {
		t.Run(string(tc.sectionType), func(t *testing.T) {
			got := r.RewriteContent("何か話した内容", tc.sectionType, analysis)
			assert.Contains(t, got, tc.marker)
		})
	}
}

// TestRewriteFullStructure runs the rewriter over segments and a full
// problem-solving layout and checks the section scaffolding.
func TestRewriteFullStructure(t *testing.T) {
	r := newRewriter()
	analysis := &model.ContentAnalysis{
		OriginalText: "動画の編集は大変です。このシステムが解決します。",
	}
	segments := []*model.TopicSegment{
		{Text: "動画の編集は大変です。", Topic: "problem"},
		{Text: "このシステムが解決します。", Topic: "solution"},
	}
	structure := article.NewStructurer().Design(&model.ContentAnalysis{Purpose: model.PurposeProblemSolving})

	sections := r.Rewrite(segments, structure, analysis)
	assert.Equal(t, 5, len(sections))
	for i, section := range sections {
		assert.Equal(t, structure.Sections[i].Title, section.Title)
		assert.Equal(t, structure.Sections[i].Type, section.Type)
		assert.NotEmpty(t, section.Content)
		assert.Equal(t, len([]rune(section.Content)), section.WordCount)
	}
}
