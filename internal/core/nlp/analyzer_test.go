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

// This file tests the content analyzer: tone, purpose and audience
// classification, main-point extraction triggers, value-proposition
// windows, and the documented defaults for empty input.
package nlp_test

import (
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
	"github.com/stretchr/testify/assert"
)

// TestClassifyTone exercises the four tone outcomes. Indicator words are
// counted by presence, so repeating one word must not change the label.
func TestClassifyTone(t *testing.T) {
	a := nlp.NewAnalyzer()

	cases := []struct {
		name string
		text string
		want model.Tone
	}{
		{"casual", "これっていう便利な機能ですね", model.ToneCasual},
		{"formal", "ご案内申し上げます。よろしくお願いいたします。", model.ToneFormal},
		{"emotional", "面白いし楽しいしすごいしびっくりした", model.ToneEmotional},
		{"balanced", "動画から記事を作る。", model.ToneBalanced},
		{"repeats do not escalate", "大変大変大変大変大変", model.ToneBalanced},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.ClassifyTone(tc.text))
		})
	}
}

// TestClassifyPurpose verifies keyword-count scoring and the
// declaration-order tie break: a text hitting no category lands on the
// first declared one.
func TestClassifyPurpose(t *testing.T) {
	a := nlp.NewAnalyzer()

	assert.Equal(t, model.PurposeProblemSolving, a.ClassifyPurpose("この方法で課題を解決します"))
	assert.Equal(t, model.PurposeInfoSharing, a.ClassifyPurpose("新機能について共有とお知らせです"))
	assert.Equal(t, model.PurposeEducation, a.ClassifyPurpose("仕組みとやり方を説明する解説動画"))
	assert.Equal(t, model.PurposeExperienceSharing, a.ClassifyPurpose("実際にやってみた経験を話します"))

	// No indicator at all: the earliest declared category wins the tie.
	assert.Equal(t, model.PurposeProblemSolving, a.ClassifyPurpose("こんにちは"))
}

// TestIdentifyTargetAudience verifies the primary audience pick plus the
// attached interests and pain points. Pain points found in the text come
// before the per-audience defaults and the list stays capped at five.
func TestIdentifyTargetAudience(t *testing.T) {
	a := nlp.NewAnalyzer()

	audience := a.IdentifyTargetAudience("動画をYouTubeとブログに展開するのは大変です")
	assert.Equal(t, model.AudienceCreator, audience.Primary)
	assert.Equal(t, []string{"コンテンツ品質", "視聴者エンゲージメント", "収益化", "成長"}, audience.Interests)
	assert.True(t, len(audience.PainPoints) <= 5)
	assert.Equal(t, "大変です", audience.PainPoints[0])

	engineer := a.IdentifyTargetAudience("システム開発とAIのプログラミング")
	assert.Equal(t, model.AudienceEngineer, engineer.Primary)
	// Nothing matched the pain patterns, so only the defaults remain.
	assert.Equal(t, []string{"技術的複雑さ", "メンテナンス", "スケーラビリティ"}, engineer.PainPoints)
}

// TestExtractMainPoints verifies the three canonical points and the two
// conditional ones, with the hard cap of five.
func TestExtractMainPoints(t *testing.T) {
	a := nlp.NewAnalyzer()

	base := a.ExtractMainPoints("特に何も語っていないテキスト")
	assert.Equal(t, 3, len(base))
	for _, p := range base {
		assert.Equal(t, model.ImportanceHigh, p.Importance)
	}

	withClaude := a.ExtractMainPoints("クロードで記事を書いています")
	assert.Equal(t, 4, len(withClaude))
	assert.Contains(t, withClaude[3].Text, "クロード")
	assert.Equal(t, model.ImportanceMedium, withClaude[3].Importance)

	full := a.ExtractMainPoints("自動のシステムをClaudeで作りました")
	assert.Equal(t, 5, len(full))
}

// TestExtractValueProposition verifies the three tiers: a time-saving
// pattern, then a benefit keyword, then the static fallback.
func TestExtractValueProposition(t *testing.T) {
	a := nlp.NewAnalyzer()

	fromTime := a.ExtractValueProposition("このシステムで作業を自動化できます")
	assert.Contains(t, fromTime, "自動化")

	fromBenefit := a.ExtractValueProposition("誰でも使えて便利なツールという話")
	assert.Contains(t, fromBenefit, "便利")

	assert.Equal(t, "新しい可能性を提供します", a.ExtractValueProposition("こんにちは"))
}

// TestAnalyzeEmptyInput verifies the documented default analysis for
// blank text instead of an error.
func TestAnalyzeEmptyInput(t *testing.T) {
	a := nlp.NewAnalyzer()

	analysis := a.Analyze("   ")
	assert.Equal(t, model.ToneBalanced, analysis.Tone)
	assert.Equal(t, model.PurposeProposal, analysis.Purpose)
	assert.Equal(t, 0, len(analysis.MainPoints))
	assert.Equal(t, "新しい可能性を提供します", analysis.ValueProposition)
}

// TestAnalyzeFullText runs the whole analysis over a realistic spoken
// transcript and checks the fields hang together.
func TestAnalyzeFullText(t *testing.T) {
	a := nlp.NewAnalyzer()

	text := "えっと、動画編集って大変なんですよ。このシステムで作業を自動化できます。クロードを使っています。"
	analysis := a.Analyze(text)

	assert.Equal(t, text, analysis.OriginalText)
	assert.Equal(t, 5, len(analysis.MainPoints))
	assert.Contains(t, analysis.ValueProposition, "自動化")
}
