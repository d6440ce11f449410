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

// Package article_test contains unit tests for the article stage. This
// file tests the SEO pass: keyword extraction, title optimization, meta
// description assembly, slug generation, and reading time.
package article_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// fixedClock pins the SEO processor to a known instant so the date-based
// slug fallback is assertable.
func fixedClock() time.Time {
	return time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
}

// TestSEOExtractKeywords verifies the character-class extraction:
// katakana runs of three or more, kanji runs of two to four, ranked by
// frequency with first-occurrence tie breaks.
func TestSEOExtractKeywords(t *testing.T) {
	s := article.NewSEOProcessor()

	text := "システムは便利。システムとサムネイル。システムを大事に使う。"
	keywords := s.ExtractKeywords(text)

	assert.Equal(t, "システム", keywords[0])
	assert.Contains(t, keywords, "サムネイル")
	assert.Contains(t, keywords, "便利")
	assert.True(t, len(keywords) <= 7)
}

// TestSEOOptimizeTitle verifies the keyword-append rule: a title already
// carrying a top keyword stays untouched, one without gains the phrase.
func TestSEOOptimizeTitle(t *testing.T) {
	s := article.NewSEOProcessor()
	keywords := []string{"システム", "自動化", "動画"}

	assert.Equal(t, "新しいシステムの話", s.OptimizeTitle("新しいシステムの話", keywords))
	assert.Equal(t, "今日の近況 - システムを活用した方法", s.OptimizeTitle("今日の近況", keywords))
	assert.Equal(t, "無題", s.OptimizeTitle("無題", nil))
}

// TestSEOMetaDescription verifies the assembly and the 150-character
// hard cap.
func TestSEOMetaDescription(t *testing.T) {
	s := article.NewSEOProcessor()

	desc := s.MetaDescription("短い価値提案", []string{"A", "B", "C", "D"})
	assert.Equal(t, "短い価値提案 A、B、Cについて詳しく解説します。", desc)

	long := strings.Repeat("あ", 160)
	wordy := []string{strings.Repeat("か", 15), strings.Repeat("き", 15), strings.Repeat("く", 15)}
	capped := s.MetaDescription(long, wordy)
	assert.Equal(t, 150, len([]rune(capped)))
}

// TestSEOSlug verifies ASCII slugification and the date fallback for
// Japanese titles.
func TestSEOSlug(t *testing.T) {
	s := article.NewSEOProcessorAt(fixedClock)

	assert.Equal(t, "hello-world-guide", s.Slug("Hello World Guide"))
	assert.Equal(t, "go-cli-tips", s.Slug("Go & CLI: Tips!"))
	assert.Equal(t, "post-20250901103000", s.Slug("動画システムの話"))
	assert.Equal(t, "post-20250901103000", s.Slug("!!!"))
}

// TestReadingTime verifies the 400-characters-per-minute estimate and
// its floor of one minute.
func TestReadingTime(t *testing.T) {
	sections := []*model.Section{{Content: strings.Repeat("あ", 300)}}

	assert.Equal(t, 2, article.ReadingTime(strings.Repeat("い", 500), sections, strings.Repeat("う", 100)))
	assert.Equal(t, 1, article.ReadingTime("短文", nil, ""))
}
