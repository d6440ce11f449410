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

	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/core/render"
)

// RenderCommand writes the blog article to disk as a front-mattered
// post file in the run's output directory.
type RenderCommand struct {
	cor.BaseCommand
	writer *render.Writer
}

// NewRenderCommand is the constructor for RenderCommand.
func NewRenderCommand(name string, writer *render.Writer) *RenderCommand {
	return &RenderCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		writer:      writer,
	}
}

// Execute runs the article rendering stage.
func (c *RenderCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Blog == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no article available to render"))
		return
	}

	path, err := c.writer.WritePost(state.Blog, state.OutputDir)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	state.Outputs.Article = path

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
