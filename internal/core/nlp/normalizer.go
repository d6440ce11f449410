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

// Package nlp contains the text-analysis stages of the content pipeline:
// spoken-to-written normalization, tone/purpose/audience classification,
// topic segmentation, keyword extraction, and summarization. Everything
// here is pure keyword and regex matching over Japanese transcript text;
// the word tables are data owned by the constructors, not scattered
// literals, so they stay independently testable.
//
// This file defines the Text Normalizer. It converts colloquial speech
// patterns into written style through an ordered literal replacement
// table, then strips filler interjections and collapses duplicated
// terminal punctuation. The replacement order is load-bearing: later
// entries match substrings that earlier entries produce or preserve, so
// the table is a slice, not a map.
package nlp

import (
	"regexp"
	"strings"
)

// replacement is one colloquial-to-written literal mapping.
type replacement struct {
	Spoken  string
	Written string
}

// Normalizer rewrites spoken-style transcript text into written style.
// Normalization is idempotent: applying it to already-normalized text
// yields the same text.
type Normalizer struct {
	replacements []replacement
	fillers      *regexp.Regexp
	duplicateDes *regexp.Regexp
	duplicateMas *regexp.Regexp
	trailingGaMo *regexp.Regexp
	toIumo       *regexp.Regexp
	finalDesu    *regexp.Regexp
	finalMasu    *regexp.Regexp
	doubleStop   *regexp.Regexp
}

// NewNormalizer builds a Normalizer with the standard replacement table.
// The table also corrects recurring speech-model mishearings (ケーシャル,
// 先生AI and the like) observed in real transcripts.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		replacements: []replacement{
			{"んですけど", "のですが"},
			{"んです", "のです"},
			{"っていう", "という"},
			{"ちゃう", "しまう"},
			{"じゃないかな", "ではないでしょうか"},
			{"じゃないかなと", "ではないかと"},
			{"と思うんですね", "と考えられます"},
			{"と思うんです", "と思います"},
			{"ですね", "です"},
			{"思ってます", "思っています"},
			{"なんですよ", "なのです"},
			{"なんですけども", "のですが"},
			{"んですけども", "のですが"},
			{"ケーシャル", "カジュアル"},
			{"テイア", "アイデア"},
			{"シジュー", "実装"},
			{"大いん", "多いの"},
			{"やがる", "あがる"},
			{"ヘタス", "へたをすれば"},
			{"会いた", "空いた"},
			{"先生AI", "生成AI"},
			{"警社", "会社"},
			{"です、", "です。"},
			{"ます、", "ます。"},
		},
		fillers:      regexp.MustCompile(`あの、|えっと、|まあ、|ちょっと`),
		duplicateDes: regexp.MustCompile(`です。です。`),
		duplicateMas: regexp.MustCompile(`ます。ます。`),
		trailingGaMo: regexp.MustCompile(`のですがも`),
		toIumo:       regexp.MustCompile(`というも`),
		finalDesu:    regexp.MustCompile(`です$`),
		finalMasu:    regexp.MustCompile(`ます$`),
		doubleStop:   regexp.MustCompile(`。。`),
	}
}

// Normalize converts spoken-style text to written style. A string with no
// colloquial patterns passes through unchanged.
func (n *Normalizer) Normalize(text string) string {
	for _, r := range n.replacements {
		text = strings.ReplaceAll(text, r.Spoken, r.Written)
	}

	text = n.fillers.ReplaceAllString(text, "")
	text = n.duplicateDes.ReplaceAllString(text, "です。")
	text = n.duplicateMas.ReplaceAllString(text, "ます。")
	text = n.trailingGaMo.ReplaceAllString(text, "のですが")
	text = n.toIumo.ReplaceAllString(text, "という方も")

	text = n.finalDesu.ReplaceAllString(text, "です。")
	text = n.finalMasu.ReplaceAllString(text, "ます。")
	text = n.doubleStop.ReplaceAllString(text, "。")

	return strings.TrimSpace(text)
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	spacedKuten    = regexp.MustCompile(`\s*。\s*`)
	spacedTouten   = regexp.MustCompile(`\s*、\s*`)
	cleanupFillers = []string{"あの", "えっと", "まあ", "ちょっと", "なんか"}
	spacedExclaim  = regexp.MustCompile(`\s+！`)
	spacedQuestion = regexp.MustCompile(`\s+？`)
)

// CleanText collapses whitespace, tightens punctuation spacing, and strips
// bare filler words. Used on extracted snippets (value propositions) where
// the full written-style conversion would be too aggressive.
func CleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spacedKuten.ReplaceAllString(text, "。")
	text = spacedTouten.ReplaceAllString(text, "、")
	text = spacedExclaim.ReplaceAllString(text, "！")
	text = spacedQuestion.ReplaceAllString(text, "？")
	for _, filler := range cleanupFillers {
		text = strings.ReplaceAll(text, filler, "")
	}
	return strings.TrimSpace(text)
}
