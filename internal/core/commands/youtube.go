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
	"fmt"
	"os"
	"path/filepath"

	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
)

// YouTubeDescriptionFile is the name of the description artifact.
const YouTubeDescriptionFile = "youtube_description.txt"

// YouTubeCommand formats the video description (summary, chapters,
// keywords, tags) and writes it to the run's output directory.
type YouTubeCommand struct {
	cor.BaseCommand
	formatter *channels.DescriptionFormatter
}

// NewYouTubeCommand is the constructor for YouTubeCommand.
func NewYouTubeCommand(name string, formatter *channels.DescriptionFormatter) *YouTubeCommand {
	return &YouTubeCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		formatter:   formatter,
	}
}

// Execute runs the description formatting stage.
func (c *YouTubeCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Transcript == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no transcript available for description"))
		return
	}

	description := c.formatter.Format(state.Transcript, state.Title)
	path := filepath.Join(state.OutputDir, YouTubeDescriptionFile)
	if err := os.WriteFile(path, []byte(description), 0o644); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("failed to write description: %w", err))
		return
	}
	state.Outputs.YouTube = path

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
