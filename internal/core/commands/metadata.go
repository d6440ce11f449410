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

package commands

import (
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// MetadataFile is the run summary written at the end of every run.
const MetadataFile = "metadata.json"

// MetadataCommand assembles the run summary from the accumulated state
// and writes metadata.json. It runs last so the file lists every
// artifact the earlier stages produced.
type MetadataCommand struct {
	cor.BaseCommand
}

// NewMetadataCommand is the constructor for MetadataCommand.
func NewMetadataCommand(name string) *MetadataCommand {
	return &MetadataCommand{BaseCommand: *cor.NewBaseCommand(name)}
}

// Execute runs the metadata stage.
func (c *MetadataCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	stats := &model.RunStats{}
	if state.Transcript != nil {
		stats.Duration = state.Transcript.Duration
		stats.CharCount = utf8.RuneCountInString(state.Transcript.Text)
	}
	if state.Blog != nil {
		stats.SectionCount = len(state.Blog.Sections)
	}
	if state.Social != nil {
		stats.VariationCount = len(state.Social.Variations)
	}

	state.Metadata = &model.RunMetadata{
		RunID:       state.RunID,
		Title:       state.Title,
		VideoPath:   state.VideoPath,
		ProcessedAt: time.Now().Format(time.RFC3339),
		OutputDir:   state.OutputDir,
		Files:       &state.Outputs,
		Stats:       stats,
	}
	if state.VideoInfo.Duration > 0 {
		info := state.VideoInfo
		state.Metadata.Video = &info
	}

	path := filepath.Join(state.OutputDir, MetadataFile)
	if err := writeJSON(path, state.Metadata); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
