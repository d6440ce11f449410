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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

const (
	TranscriptJSONFile       = "transcript.json"
	TranscriptTextFile       = "transcript.txt"
	TranscriptTimestampsFile = "transcript_timestamps.txt"
)

// SaveTranscript writes the transcript into outputDir in three shapes:
// structured JSON for downstream tools, the bare text, and a timestamped
// listing for human review.
func SaveTranscript(t *model.Transcript, outputDir string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, TranscriptJSONFile), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", TranscriptJSONFile, err)
	}

	if err := os.WriteFile(filepath.Join(outputDir, TranscriptTextFile), []byte(t.Text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", TranscriptTextFile, err)
	}

	var sb strings.Builder
	for _, seg := range t.Segments {
		fmt.Fprintf(&sb, "[%s - %s]\n", model.FormatTime(seg.Start), model.FormatTime(seg.End))
		sb.WriteString(seg.Text)
		sb.WriteString("\n\n")
	}
	if err := os.WriteFile(filepath.Join(outputDir, TranscriptTimestampsFile), []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", TranscriptTimestampsFile, err)
	}
	return nil
}
