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

// This file defines the SEO post-processor: keyword extraction by
// character-class runs, title optimization, meta description assembly,
// and URL slug generation. The meta description cap is a hard character
// cut, not word-boundary aware; that is the documented contract.
package article

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

var (
	katakanaRun = regexp.MustCompile(`[ァ-ヴー]{3,}`)
	kanjiRun    = regexp.MustCompile(`[一-龥]{2,4}`)
	nonSlugChar = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`[\s]+`)
	hyphenRun   = regexp.MustCompile(`-+`)
	nonASCII    = regexp.MustCompile(`[^\x00-\x7F]`)
)

// seoStopwords are too generic to serve as keywords.
var seoStopwords = map[string]bool{
	"こと": true, "もの": true, "これ": true, "それ": true,
	"ところ": true, "ため": true,
}

// SEOResult is the output of the SEO pass.
type SEOResult struct {
	OptimizedTitle  string
	Keywords        []string
	MetaDescription string
	Slug            string
}

// SEOProcessor builds keywords, title, meta description, and slug from
// the content analysis. The clock is injectable so slug fallbacks are
// testable.
type SEOProcessor struct {
	now func() time.Time
}

// NewSEOProcessor builds an SEOProcessor using the wall clock.
func NewSEOProcessor() *SEOProcessor {
	return &SEOProcessor{now: time.Now}
}

// NewSEOProcessorAt builds an SEOProcessor with a fixed clock, for tests.
func NewSEOProcessorAt(now func() time.Time) *SEOProcessor {
	return &SEOProcessor{now: now}
}

// Optimize runs the full SEO pass over the original title and analysis.
func (s *SEOProcessor) Optimize(originalTitle string, analysis *model.ContentAnalysis) *SEOResult {
	keywords := s.ExtractKeywords(analysis.OriginalText)
	title := s.OptimizeTitle(originalTitle, keywords)
	return &SEOResult{
		OptimizedTitle:  title,
		Keywords:        keywords,
		MetaDescription: s.MetaDescription(analysis.ValueProposition, keywords),
		Slug:            s.Slug(title),
	}
}

// ExtractKeywords scans for katakana runs of three or more characters and
// kanji runs of two to four, counts frequency, drops stopwords, and
// returns the top seven. Frequency ties keep first-occurrence order.
func (s *SEOProcessor) ExtractKeywords(text string) []string {
	type entry struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*entry)
	var order []*entry
	add := func(words []string, offset int) {
		for i, word := range words {
			if e, ok := counts[word]; ok {
				e.count++
				continue
			}
			e := &entry{word: word, count: 1, first: offset + i}
			counts[word] = e
			order = append(order, e)
		}
	}

	katakana := katakanaRun.FindAllString(text, -1)
	add(katakana, 0)
	add(kanjiRun.FindAllString(text, -1), len(katakana))

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	keywords := make([]string, 0, 7)
	for _, e := range order {
		if seoStopwords[e.word] {
			continue
		}
		keywords = append(keywords, e.word)
		if len(keywords) == 7 {
			break
		}
	}
	return keywords
}

// OptimizeTitle appends a keyword phrase when none of the top three
// keywords already appear in the title.
func (s *SEOProcessor) OptimizeTitle(title string, keywords []string) string {
	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}
	for _, kw := range top {
		if strings.Contains(title, kw) {
			return title
		}
	}
	if len(keywords) > 0 {
		return title + " - " + keywords[0] + "を活用した方法"
	}
	return title
}

// MetaDescription builds the description from the head of the value
// proposition plus the top three keywords, hard-capped at 150 characters.
func (s *SEOProcessor) MetaDescription(valueProposition string, keywords []string) string {
	base := []rune(valueProposition)
	if len(base) > 100 {
		base = base[:100]
	}

	top := keywords
	if len(top) > 3 {
		top = top[:3]
	}

	desc := string(base) + " " + strings.Join(top, "、") + "について詳しく解説します。"
	runes := []rune(desc)
	if len(runes) > 150 {
		runes = runes[:150]
	}
	return string(runes)
}

// Slug generates a lowercase alphanumeric-and-hyphen slug capped at 50
// characters. Titles carrying any non-ASCII character get a date-based
// fallback instead, so the slug is never empty.
func (s *SEOProcessor) Slug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChar.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = hyphenRun.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if nonASCII.MatchString(title) || slug == "" {
		slug = "post-" + s.now().Format("20060102150405")
	}

	if len(slug) > 50 {
		slug = slug[:50]
	}
	return slug
}

// ReadingTime estimates minutes to read at 400 characters per minute,
// never below one.
func ReadingTime(introduction string, sections []*model.Section, conclusion string) int {
	total := len([]rune(introduction)) + len([]rune(conclusion))
	for _, section := range sections {
		total += len([]rune(section.Content))
	}
	minutes := total / 400
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
