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

// This file tests the topic segmenter: the discourse-marker split rule
// with its minimum length, totality of the segmentation, and topic
// labelling.
package nlp_test

import (
	"strings"
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/nlp"
	"github.com/stretchr/testify/assert"
)

// TestSegmentSplitsOnMarker verifies that a discourse marker closes the
// running segment once it has passed the minimum length, and that the
// tail lands in a final segment of its own.
func TestSegmentSplitsOnMarker(t *testing.T) {
	s := nlp.NewSegmenter()

	long := strings.Repeat("動画の編集作業はとても時間がかかる", 7)
	text := long + "ということで話を続けます。次の話題はサムネイルのデザインについてです。"

	segments := s.Segment(text)
	assert.Equal(t, 2, len(segments))
	assert.Contains(t, segments[0].Text, "ということで")
	assert.Contains(t, segments[1].Text, "サムネイル")
}

// TestSegmentHoldsShortSegments verifies that a marker inside a segment
// still under the minimum length does not close it.
func TestSegmentHoldsShortSegments(t *testing.T) {
	s := nlp.NewSegmenter()

	segments := s.Segment("短いです。それで続けます。まだ短いです。")
	assert.Equal(t, 1, len(segments))
}

// TestSegmentTotality verifies that every sentence of the input appears
// in exactly one segment, in order. The concatenated segments must cover
// the whole text.
func TestSegmentTotality(t *testing.T) {
	s := nlp.NewSegmenter()

	long := strings.Repeat("編集の工程を一つずつ説明していく長い説明文", 7)
	text := long + "ということで一区切りです。" + long + "そして次の区切りです。最後の文です。"

	segments := s.Segment(text)
	assert.True(t, len(segments) >= 2)

	var joined strings.Builder
	for _, seg := range segments {
		joined.WriteString(seg.Text)
	}
	for _, sentence := range []string{"一区切りです", "次の区切りです", "最後の文です"} {
		assert.Contains(t, joined.String(), sentence)
	}
	assert.True(t, strings.HasPrefix(joined.String(), long))
}

// TestIdentifyTopic verifies the keyword-count labelling and the general
// fallback when nothing scores.
func TestIdentifyTopic(t *testing.T) {
	s := nlp.NewSegmenter()

	assert.Equal(t, "problem", s.IdentifyTopic("編集は大変で面倒な課題です"))
	assert.Equal(t, "process", s.IdentifyTopic("手順とステップとやり方"))
	assert.Equal(t, nlp.TopicGeneral, s.IdentifyTopic("こんにちは"))
}
