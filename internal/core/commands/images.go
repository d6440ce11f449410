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
	"log/slog"
	"path/filepath"

	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/imagegen"
)

// ThumbnailImageDir is the subdirectory for generated thumbnail images.
const ThumbnailImageDir = "thumbnails"

// ImageCommand builds the prompt set for the run (three thumbnail
// strategies, the blog featured image, and section images) and drives
// the image-generation client. The whole stage is best-effort: when the
// client is disabled or every task fails, the run carries on without
// images.
type ImageCommand struct {
	cor.BaseCommand
	prompts *channels.PromptGenerator
	client  *imagegen.Client
}

// NewImageCommand is the constructor for ImageCommand.
func NewImageCommand(name string, prompts *channels.PromptGenerator, client *imagegen.Client) *ImageCommand {
	return &ImageCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		prompts:     prompts,
		client:      client,
	}
}

// Execute runs the image generation stage.
func (c *ImageCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Transcript == nil || state.Blog == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no content available for image generation"))
		return
	}

	if !c.client.Enabled() {
		slog.Info("image generation disabled, skipping")
		c.GetSuccessCounter().Add(context.GetContext(), 1)
		context.Add(c.GetOutputParam(), state)
		return
	}

	thumbDir := filepath.Join(state.OutputDir, ThumbnailImageDir)
	thumbPrompts := c.prompts.ThumbnailPrompts(state.Title, state.Transcript)
	images := c.client.GenerateThumbnails(context.GetContext(), thumbPrompts, thumbDir)

	featured := &channels.ThumbnailPrompt{
		Strategy: "featured",
		Prompt:   c.prompts.FeaturedPrompt(state.Title, state.Blog),
	}
	if img, err := c.client.GenerateFeatured(context.GetContext(), featured, state.OutputDir); err != nil {
		slog.Error("featured image generation failed", slog.Any("error", err))
	} else {
		images = append(images, *img)
	}

	sectionPrompts := c.prompts.SectionPrompts(state.Blog.Sections)
	images = append(images, c.client.GenerateSectionImages(context.GetContext(), sectionPrompts, state.OutputDir)...)

	state.Images = images
	for _, img := range images {
		state.Outputs.Images = append(state.Outputs.Images, img.Path)
	}

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
