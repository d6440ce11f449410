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
	"path/filepath"

	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
)

// ThumbnailTextFile holds the overlay title/subtitle for the thumbnail.
const ThumbnailTextFile = "thumbnail.json"

// ThumbnailCommand derives the thumbnail overlay text from the article
// and writes it to the run's output directory.
type ThumbnailCommand struct {
	cor.BaseCommand
}

// NewThumbnailCommand is the constructor for ThumbnailCommand.
func NewThumbnailCommand(name string) *ThumbnailCommand {
	return &ThumbnailCommand{BaseCommand: *cor.NewBaseCommand(name)}
}

// Execute runs the thumbnail text stage.
func (c *ThumbnailCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Transcript == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no transcript available for thumbnail text"))
		return
	}

	state.Thumbnail = channels.BuildThumbnailText(state.Title, state.Transcript.Text)

	path := filepath.Join(state.OutputDir, ThumbnailTextFile)
	if err := writeJSON(path, state.Thumbnail); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	state.Outputs.Thumbnail = path

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
