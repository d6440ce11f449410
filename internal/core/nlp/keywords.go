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

// This file holds the frequency-based keyword extractor and the sentence
// scoring summarizer shared by the channel formatters. Both are simple
// heuristics over character classes, not morphological analysis; ties in
// frequency resolve by first occurrence in the text so results stay
// deterministic.
package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches runs of kanji, kana, and word characters of length
// two and above, the crude word segmentation the extractor operates on.
var wordPattern = regexp.MustCompile(`[一-龥ぁ-んァ-ンー\w]{2,}`)

// extractStopwords are particles, auxiliaries, and function words excluded
// from keyword candidates.
var extractStopwords = map[string]bool{
	"の": true, "に": true, "は": true, "を": true, "た": true, "が": true,
	"で": true, "て": true, "と": true, "し": true, "れ": true, "さ": true,
	"ある": true, "いる": true, "も": true, "する": true, "から": true,
	"な": true, "こと": true, "として": true, "い": true, "や": true,
	"など": true, "なっ": true, "ない": true, "この": true, "ため": true,
	"その": true, "あっ": true, "よう": true, "また": true, "もの": true,
	"という": true, "あり": true, "まで": true, "られ": true, "なる": true,
	"へ": true, "か": true, "だ": true, "これ": true, "によって": true,
	"により": true, "おり": true, "より": true, "による": true, "ず": true,
	"なり": true, "られる": true, "において": true, "ば": true,
	"なかっ": true, "なく": true, "しかし": true, "について": true,
	"だけ": true, "だっ": true, "その他": true, "それ": true, "ところ": true,
}

// ExtractKeywords returns the num most frequent content words in the
// text. Frequency ties keep first-occurrence order.
func ExtractKeywords(text string, num int) []string {
	type entry struct {
		word  string
		count int
		first int
	}

	counts := make(map[string]*entry)
	var order []*entry
	for i, word := range wordPattern.FindAllString(text, -1) {
		if extractStopwords[word] {
			continue
		}
		if e, ok := counts[word]; ok {
			e.count++
			continue
		}
		e := &entry{word: word, count: 1, first: i}
		counts[word] = e
		order = append(order, e)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	keywords := make([]string, 0, num)
	for _, e := range order {
		if len(keywords) == num {
			break
		}
		keywords = append(keywords, e.word)
	}
	return keywords
}

var summarySplit = regexp.MustCompile(`[。！？]+`)

// Summarize builds a short extract of the text by scoring sentences:
// explanatory phrasing and mid-length sentences score, and collection
// stops at three sentences or the length cap. When nothing scores, the
// head of the text is truncated with an ellipsis instead.
func Summarize(text string, maxLength int) string {
	var picked []string
	length := 0

	for _, sentence := range summarySplit.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		score := 0
		for _, kw := range []string{"です", "ます", "について", "とは", "ため"} {
			if strings.Contains(sentence, kw) {
				score++
				break
			}
		}
		n := len([]rune(sentence))
		if n > 20 && n < 100 {
			score++
		}

		if score > 0 && length+n <= maxLength {
			picked = append(picked, sentence)
			length += n
		}
		if len(picked) >= 3 {
			break
		}
	}

	if len(picked) == 0 {
		runes := []rune(text)
		if len(runes) > maxLength {
			runes = runes[:maxLength]
		}
		return string(runes) + "..."
	}
	return strings.Join(picked, "。") + "。"
}
