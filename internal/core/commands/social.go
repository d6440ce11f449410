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

const (
	// SocialPostsFile holds every styled variation plus the thread.
	SocialPostsFile = "x_posts.json"
	// LegacySocialPostFile is the single-post format kept for older
	// publishing scripts.
	LegacySocialPostFile = "twitter_post.txt"
)

// SocialCommand generates the styled social post variations and writes
// them to the run's output directory, together with the legacy
// single-post format.
type SocialCommand struct {
	cor.BaseCommand
	formatter *channels.SocialFormatter
}

// NewSocialCommand is the constructor for SocialCommand.
func NewSocialCommand(name string, formatter *channels.SocialFormatter) *SocialCommand {
	return &SocialCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		formatter:   formatter,
	}
}

// Execute runs the social post stage.
func (c *SocialCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Blog == nil || state.Transcript == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no article available for social posts"))
		return
	}

	state.Social = c.formatter.GenerateVariations(state.Blog)

	path := filepath.Join(state.OutputDir, SocialPostsFile)
	if err := writeJSON(path, state.Social); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	state.Outputs.SocialPosts = path

	legacy := c.formatter.SimplePost(state.Title, state.Transcript.Text)
	legacyPath := filepath.Join(state.OutputDir, LegacySocialPostFile)
	if err := os.WriteFile(legacyPath, []byte(legacy), 0o644); err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("failed to write legacy post: %w", err))
		return
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
