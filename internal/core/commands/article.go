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

	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
)

// ArticleCommand turns the transcript into the structured blog article:
// analysis, topic segmentation, section rewriting, and SEO metadata.
type ArticleCommand struct {
	cor.BaseCommand
	optimizer *article.Optimizer
}

// NewArticleCommand is the constructor for ArticleCommand.
func NewArticleCommand(name string, optimizer *article.Optimizer) *ArticleCommand {
	return &ArticleCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		optimizer:   optimizer,
	}
}

// Execute runs the article generation stage.
func (c *ArticleCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}
	if state.Transcript == nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), fmt.Errorf("no transcript available for article generation"))
		return
	}

	state.Blog = c.optimizer.Optimize(state.Transcript, state.Title)

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
