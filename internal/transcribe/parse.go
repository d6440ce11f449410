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

package transcribe

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// chapterGapSeconds is the minimum spacing between chapter markers.
const chapterGapSeconds = 30

// chapterTitleMax is the rune length at which a chapter title is cut.
const chapterTitleMax = 50

// whisperSegment mirrors one entry of Whisper's segment array.
type whisperSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// whisperResult mirrors the top level of Whisper's JSON output.
type whisperResult struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
	Language string           `json:"language"`
}

// ParseWhisperFile reads a Whisper JSON output file and structures it.
func ParseWhisperFile(path string) (*model.Transcript, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper output: %w", err)
	}
	return ParseWhisperOutput(raw)
}

// ParseWhisperOutput structures raw Whisper JSON into a Transcript.
// Malformed JSON is rejected rather than papered over, since every later
// stage depends on the segment boundaries.
func ParseWhisperOutput(raw []byte) (*model.Transcript, error) {
	var result whisperResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid whisper output: %w", err)
	}

	transcript := &model.Transcript{
		Text:     result.Text,
		Language: result.Language,
	}
	if transcript.Language == "" {
		transcript.Language = "ja"
	}

	lastChapterTime := 0.0
	for _, seg := range result.Segments {
		if seg.End < seg.Start {
			return nil, fmt.Errorf("invalid whisper output: segment %d ends before it starts", seg.ID)
		}
		transcript.Segments = append(transcript.Segments, &model.Segment{
			ID:       seg.ID,
			Start:    seg.Start,
			End:      seg.End,
			Text:     strings.TrimSpace(seg.Text),
			Duration: seg.End - seg.Start,
		})

		// A chapter opens whenever a segment starts at least the gap
		// after the previous chapter. The opening of the video is not a
		// chapter; the description formatter adds its own 0:00 entry.
		if seg.Start-lastChapterTime >= chapterGapSeconds {
			transcript.Chapters = append(transcript.Chapters, &model.Chapter{
				Time:      model.FormatTime(seg.Start),
				Timestamp: seg.Start,
				Title:     chapterTitle(seg.Text),
			})
			lastChapterTime = seg.Start
		}
	}

	if n := len(transcript.Segments); n > 0 {
		transcript.Duration = transcript.Segments[n-1].End
	}
	return transcript, nil
}

func chapterTitle(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= chapterTitleMax {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:chapterTitleMax])) + "..."
}
