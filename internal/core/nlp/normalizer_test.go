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

// Package nlp_test contains unit tests for the text-analysis stages.
// This file tests the spoken-to-written normalizer: the literal
// replacement table, filler stripping, terminal punctuation, and the
// idempotence guarantee the rest of the pipeline relies on.
package nlp_test

import (
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/nlp"
	"github.com/stretchr/testify/assert"
)

// TestNormalizeColloquialPatterns verifies the core replacement table:
// spoken-style endings become written style and a sentence-final です/ます
// gains its full stop.
func TestNormalizeColloquialPatterns(t *testing.T) {
	n := nlp.NewNormalizer()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"desu-ne ending", "今日はいい天気ですね", "今日はいい天気です。"},
		{"tte-iu", "AIっていうのは便利ですね", "AIというのは便利です。"},
		{"n-desu-kedo", "時間がかかるんですけど", "時間がかかるのですが"},
		{"masu comma", "始めます、次に進みます", "始めます。次に進みます。"},
		{"mishearing fix", "先生AIを使います", "生成AIを使います。"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(tc.in))
		})
	}
}

// TestNormalizeStripsFillers verifies that interjection fillers disappear
// and the surrounding sentence is left intact.
func TestNormalizeStripsFillers(t *testing.T) {
	n := nlp.NewNormalizer()

	got := n.Normalize("えっと、今日は新しいシステムを紹介します")
	assert.Equal(t, "今日は新しいシステムを紹介します。", got)

	got = n.Normalize("あの、まあ、これでいいと思います")
	assert.Equal(t, "これでいいと思います。", got)
}

// TestNormalizeIdempotent verifies that normalizing already-normalized
// text is a no-op. Downstream stages may re-run the normalizer on
// snippets without corrupting them.
func TestNormalizeIdempotent(t *testing.T) {
	n := nlp.NewNormalizer()

	inputs := []string{
		"今日はいい天気ですね",
		"えっと、動画編集って大変なんですよ",
		"ブログ記事を自動で生成できるんです",
		"すでに書き言葉の文章です。",
	}

	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input: %s", in)
	}
}

// TestNormalizePassThrough verifies that text with no colloquial
// patterns and no sentence-final です/ます survives unchanged.
func TestNormalizePassThrough(t *testing.T) {
	n := nlp.NewNormalizer()
	assert.Equal(t, "動画から記事へ。", n.Normalize("動画から記事へ。"))
}

// TestCleanText verifies the lighter cleanup used on extracted snippets:
// whitespace collapse, punctuation tightening, and bare filler removal.
func TestCleanText(t *testing.T) {
	assert.Equal(t, "テスト。これ、いい", nlp.CleanText("あの  テスト 。 これ 、 いい"))
	assert.Equal(t, "すごい！", nlp.CleanText("なんか すごい ！"))
	assert.Equal(t, "", nlp.CleanText("  ちょっと  "))
}
