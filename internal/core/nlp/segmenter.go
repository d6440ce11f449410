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

// This file defines the Topic Segmenter. It splits transcript text into
// sentences, accumulates them into running segments, and closes a segment
// when a sentence carries a discourse marker and the accumulated text has
// passed the minimum length. Each closed segment gets a coarse topic
// label by keyword count. Segmentation is total: every sentence lands in
// exactly one segment, in source order.
package nlp

import (
	"regexp"
	"strings"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// minSegmentLength is the character count a segment must reach before a
// discourse marker is allowed to close it.
const minSegmentLength = 100

// TopicGeneral is the label for segments no topic category scores on.
const TopicGeneral = "general"

var sentenceSplit = regexp.MustCompile(`[。！？]`)

// Segmenter splits transcript text into topic-labelled segments.
type Segmenter struct {
	markers []string
	topics  []keywordCategory
}

// NewSegmenter builds a Segmenter with the standard discourse markers and
// topic keyword tables.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		markers: []string{"ということで", "それで", "で、", "次に", "そして", "あと", "ちなみに"},
		topics: []keywordCategory{
			{Label: "problem", Keywords: []string{"大変", "困る", "面倒", "課題"}},
			{Label: "solution", Keywords: []string{"解決", "方法", "システム", "ツール"}},
			{Label: "benefits", Keywords: []string{"メリット", "良い", "便利", "効率"}},
			{Label: "process", Keywords: []string{"やり方", "手順", "ステップ", "流れ"}},
			{Label: "result", Keywords: []string{"結果", "成果", "効果", "できる"}},
		},
	}
}

// Segment splits the text into topic-labelled segments. Sentence order is
// preserved and every sentence appears in exactly one segment.
func (s *Segmenter) Segment(text string) []*model.TopicSegment {
	var segments []*model.TopicSegment
	current := ""

	for _, sentence := range sentenceSplit.Split(text, -1) {
		current += sentence + "。"

		if !s.hasMarker(sentence) {
			continue
		}
		if len([]rune(current)) > minSegmentLength {
			segments = append(segments, &model.TopicSegment{
				Text:  current,
				Topic: s.IdentifyTopic(current),
			})
			current = ""
		}
	}

	if current != "" {
		segments = append(segments, &model.TopicSegment{
			Text:  current,
			Topic: s.IdentifyTopic(current),
		})
	}

	return segments
}

// IdentifyTopic labels a text chunk with the topic category scoring the
// most keyword hits, or "general" when nothing scores.
func (s *Segmenter) IdentifyTopic(text string) string {
	best := TopicGeneral
	bestScore := 0
	for _, topic := range s.topics {
		score := countPresent(text, topic.Keywords)
		if score > bestScore {
			best = topic.Label
			bestScore = score
		}
	}
	return best
}

func (s *Segmenter) hasMarker(sentence string) bool {
	for _, marker := range s.markers {
		if strings.Contains(sentence, marker) {
			return true
		}
	}
	return false
}
