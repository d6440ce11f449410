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

// This file defines the Content Analyzer. It classifies tone, purpose,
// and target audience by counting curated indicator words, extracts the
// headline main points, and pulls a value-proposition snippet out of the
// source text. All classification is deterministic: category score ties
// resolve in declaration order of the keyword tables.
package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// keywordCategory pairs a label with its indicator words. Categories are
// scored by the number of indicator words present in the text.
type keywordCategory struct {
	Label    string
	Keywords []string
}

// valuePropFallback is emitted when no time-saving or benefit phrasing is
// found in the source text.
const valuePropFallback = "新しい可能性を提供します"

// Analyzer classifies transcript text and extracts its headline points.
type Analyzer struct {
	casualIndicators  []string
	formalIndicators  []string
	emotionIndicators []string

	purposes  []keywordCategory
	audiences []keywordCategory

	interests         map[model.Audience][]string
	defaultPainPoints map[model.Audience][]string
	painPatterns      []*regexp.Regexp

	timePatterns    []*regexp.Regexp
	benefitKeywords []string
}

// NewAnalyzer builds an Analyzer with the standard Japanese indicator
// tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		casualIndicators:  []string{"ですね", "んですけど", "っていう", "ちゃう", "じゃないかな"},
		formalIndicators:  []string{"ございます", "いたします", "おります", "申し上げ"},
		emotionIndicators: []string{"面白い", "楽しい", "すごい", "大変", "びっくり"},

		purposes: []keywordCategory{
			{Label: string(model.PurposeProblemSolving), Keywords: []string{"解決", "改善", "対策", "方法", "どうすれば"}},
			{Label: string(model.PurposeInfoSharing), Keywords: []string{"紹介", "共有", "お知らせ", "発表", "について"}},
			{Label: string(model.PurposeEducation), Keywords: []string{"説明", "解説", "とは", "仕組み", "やり方"}},
			{Label: string(model.PurposeProposal), Keywords: []string{"提案", "アイデア", "新しい", "革新的", "これから"}},
			{Label: string(model.PurposeExperienceSharing), Keywords: []string{"やってみた", "使ってみた", "経験", "実際に"}},
		},
		audiences: []keywordCategory{
			{Label: string(model.AudienceBusiness), Keywords: []string{"ビジネス", "業務", "効率", "仕事", "会社"}},
			{Label: string(model.AudienceCreator), Keywords: []string{"動画", "YouTube", "ブログ", "SNS", "コンテンツ"}},
			{Label: string(model.AudienceEngineer), Keywords: []string{"プログラミング", "コード", "システム", "開発", "AI"}},
			{Label: string(model.AudienceGeneral), Keywords: []string{"簡単", "誰でも", "初心者", "使いやすい"}},
		},

		interests: map[model.Audience][]string{
			model.AudienceBusiness: {"効率化", "生産性向上", "時間管理", "ROI"},
			model.AudienceCreator:  {"コンテンツ品質", "視聴者エンゲージメント", "収益化", "成長"},
			model.AudienceEngineer: {"技術詳細", "実装方法", "パフォーマンス", "拡張性"},
			model.AudienceGeneral:  {"使いやすさ", "コスト", "時間節約", "結果"},
		},
		defaultPainPoints: map[model.Audience][]string{
			model.AudienceBusiness: {"時間不足", "効率の悪さ", "コスト"},
			model.AudienceCreator:  {"コンテンツ制作の手間", "一貫性の維持", "マルチプラットフォーム対応"},
			model.AudienceEngineer: {"技術的複雑さ", "メンテナンス", "スケーラビリティ"},
			model.AudienceGeneral:  {"使い方がわからない", "時間がかかる", "コストが高い"},
		},
		painPatterns: []*regexp.Regexp{
			regexp.MustCompile(`大変(?:だと思う|です)?`),
			regexp.MustCompile(`面倒(?:くさい|です)?`),
			regexp.MustCompile(`時間が(?:かかる|ない)`),
			regexp.MustCompile(`難しい`),
			regexp.MustCompile(`困る`),
		},

		timePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(\d+)時間.*?(\d+)分`),
			regexp.MustCompile(`時間.*?短縮`),
			regexp.MustCompile(`効率.*?アップ`),
			regexp.MustCompile(`自動化`),
		},
		benefitKeywords: []string{"できる", "可能になる", "便利", "簡単", "楽に"},
	}
}

// Analyze classifies the given text and assembles the full analysis
// record. Empty or blank input yields the documented default analysis
// (balanced tone, proposal purpose, no main points) rather than an error.
func (a *Analyzer) Analyze(text string) *model.ContentAnalysis {
	if strings.TrimSpace(text) == "" {
		return &model.ContentAnalysis{
			Tone:             model.ToneBalanced,
			Purpose:          model.PurposeProposal,
			MainPoints:       []*model.MainPoint{},
			ValueProposition: valuePropFallback,
		}
	}

	return &model.ContentAnalysis{
		Tone:             a.ClassifyTone(text),
		MainPoints:       a.ExtractMainPoints(text),
		Purpose:          a.ClassifyPurpose(text),
		ValueProposition: a.ExtractValueProposition(text),
		OriginalText:     text,
	}
}

// ClassifyTone labels the register of the text by the presence of three
// indicator-word sets. Strict inequality means ties fall through to the
// balanced default.
func (a *Analyzer) ClassifyTone(text string) model.Tone {
	casual := countPresent(text, a.casualIndicators)
	formal := countPresent(text, a.formalIndicators)
	emotion := countPresent(text, a.emotionIndicators)

	switch {
	case casual > formal*2:
		return model.ToneCasual
	case formal > casual*2:
		return model.ToneFormal
	case emotion > 3:
		return model.ToneEmotional
	default:
		return model.ToneBalanced
	}
}

// ClassifyPurpose returns the purpose category whose keyword list scores
// highest against the text. Ties resolve to the earliest declared
// category.
func (a *Analyzer) ClassifyPurpose(text string) model.Purpose {
	return model.Purpose(maxCategory(text, a.purposes, 1))
}

// IdentifyTargetAudience picks the primary reader group by weighted
// keyword scoring and attaches its fixed interests and the pain points
// found in (or defaulted for) the text.
func (a *Analyzer) IdentifyTargetAudience(text string) *model.TargetAudience {
	primary := model.Audience(maxCategory(text, a.audiences, 2))
	return &model.TargetAudience{
		Primary:    primary,
		Interests:  a.interests[primary],
		PainPoints: a.extractPainPoints(primary, text),
	}
}

// ExtractMainPoints returns the headline statements for the article. The
// three canonical points describe what the system itself does; two more
// are appended when their trigger phrases appear in the text. Capped at
// five.
func (a *Analyzer) ExtractMainPoints(text string) []*model.MainPoint {
	points := []*model.MainPoint{
		{Text: "動画ファイル一つで、ブログ記事・SNS投稿・サムネイルを自動生成", Importance: model.ImportanceHigh},
		{Text: "Whisper（無料）を使った高精度な文字起こしとAIによるリライト", Importance: model.ImportanceHigh},
		{Text: "従来3〜5時間かかっていた作業が数分で完了", Importance: model.ImportanceHigh},
	}

	if strings.Contains(text, "自動") && strings.Contains(text, "システム") {
		points = append(points, &model.MainPoint{
			Text:       "すべての処理が自動化され、創造的な活動に集中できる",
			Importance: model.ImportanceMedium,
		})
	}
	if strings.Contains(text, "クロード") || strings.Contains(text, "Claude") {
		points = append(points, &model.MainPoint{
			Text:       "クロード（Claude）を活用した実装で高品質なコンテンツを生成",
			Importance: model.ImportanceMedium,
		})
	}

	if len(points) > 5 {
		points = points[:5]
	}
	return points
}

// ExtractValueProposition pulls the sentence fragment around the first
// time-saving pattern, or failing that the first benefit keyword, with a
// fixed context window. Falls back to a static line when neither appears.
func (a *Analyzer) ExtractValueProposition(text string) string {
	runes := []rune(text)

	for _, pattern := range a.timePatterns {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		start := utf8.RuneCountInString(text[:loc[0]])
		end := utf8.RuneCountInString(text[:loc[1]])
		return CleanText(string(runes[clampLow(start-50):clampHigh(end+50, len(runes))]))
	}

	for _, keyword := range a.benefitKeywords {
		idx := strings.Index(text, keyword)
		if idx < 0 {
			continue
		}
		start := utf8.RuneCountInString(text[:idx])
		return CleanText(string(runes[clampLow(start-50):clampHigh(start+100, len(runes))]))
	}

	return valuePropFallback
}

// extractPainPoints collects regex hits from the text, appends the
// per-audience defaults, deduplicates preserving first-seen order, and
// caps the list at five.
func (a *Analyzer) extractPainPoints(audience model.Audience, text string) []string {
	var points []string
	for _, pattern := range a.painPatterns {
		points = append(points, pattern.FindAllString(text, -1)...)
	}
	points = append(points, a.defaultPainPoints[audience]...)

	seen := make(map[string]bool)
	deduped := make([]string, 0, len(points))
	for _, p := range points {
		if seen[p] {
			continue
		}
		seen[p] = true
		deduped = append(deduped, p)
	}

	if len(deduped) > 5 {
		deduped = deduped[:5]
	}
	return deduped
}

// countPresent counts how many of the indicator words occur at least once
// in the text. Repeated occurrences of one word do not raise the score.
func countPresent(text string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			n++
		}
	}
	return n
}

// maxCategory scores each category by weight per present keyword and
// returns the label of the highest scorer. Strict greater-than keeps the
// earliest declared category on ties.
func maxCategory(text string, categories []keywordCategory, weight int) string {
	best := categories[0].Label
	bestScore := -1
	for _, cat := range categories {
		score := countPresent(text, cat.Keywords) * weight
		if score > bestScore {
			best = cat.Label
			bestScore = score
		}
	}
	return best
}

func clampLow(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

func clampHigh(i, max int) int {
	if i > max {
		return max
	}
	return i
}
