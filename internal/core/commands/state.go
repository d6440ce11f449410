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

// Package commands provides the concrete pipeline stages of the content
// generation workflow as Chain of Responsibility commands. Each command
// receives the shared RunState from its input parameter, performs one
// stage of the run (transcription, article generation, channel
// formatting, metadata), and republishes the state on its output
// parameter for the next command in the chain.
package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// RunState is the accumulating state of one pipeline run. It enters the
// chain holding only the inputs (video path, title, output directory)
// and each stage fills in its slice of the result.
type RunState struct {
	RunID     string
	VideoPath string
	Title     string
	OutputDir string
	StartedAt time.Time

	Transcript *model.Transcript
	VideoInfo  model.VideoInfo
	Blog       *model.BlogContent
	Thumbnail  *model.ThumbnailText
	Social     *model.SocialPosts
	Images     []model.GeneratedImage
	Outputs    model.RunOutputs
	Metadata   *model.RunMetadata
}

// stateFrom extracts the RunState a prior command published under key.
func stateFrom(value interface{}) (*RunState, error) {
	state, ok := value.(*RunState)
	if !ok || state == nil {
		return nil, fmt.Errorf("pipeline state missing from context")
	}
	return state, nil
}

// writeJSON persists a value as indented UTF-8 JSON. HTML escaping is
// off so Japanese text and URLs stay readable in the output files.
func writeJSON(path string, value interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to encode %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
