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

// Package model defines the core data structures for the application.
// This file contains the transcript types produced by the speech-to-text
// boundary. A Transcript is created once per run, immediately after the
// whisper invocation, and is consumed read-only by every downstream
// pipeline stage.
package model

import "fmt"

// Segment is a time-bounded chunk of transcript text.
type Segment struct {
	ID       int     `json:"id"`       // Sequence number assigned by the speech model.
	Start    float64 `json:"start"`    // Start offset in seconds.
	End      float64 `json:"end"`      // End offset in seconds.
	Text     string  `json:"text"`     // Transcribed text for this span.
	Duration float64 `json:"duration"` // End minus Start, precomputed for convenience.
}

// Chapter is a coarse navigation marker derived from segments spaced at
// least thirty seconds apart. Time carries the "M:SS" display form used in
// video-platform descriptions.
type Chapter struct {
	Time      string  `json:"time"`      // Display form, e.g. "1:42".
	Timestamp float64 `json:"timestamp"` // Start offset in seconds.
	Title     string  `json:"title"`     // First 50 characters of the opening segment.
}

// Transcript is the full structured output of a transcription run.
// Immutable once built.
type Transcript struct {
	Text     string     `json:"text"`     // Full transcript text.
	Segments []*Segment `json:"segments"` // Time-ordered segments.
	Chapters []*Chapter `json:"chapters"` // Derived chapter markers.
	Language string     `json:"language"` // Source language tag, e.g. "ja".
	Duration float64    `json:"duration"` // Total duration in seconds (end of last segment).
}

// FormatTime renders a second offset as "M:SS" for chapter lists and
// timestamped transcript files.
func FormatTime(seconds float64) string {
	minutes := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
