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

// Package article turns an analyzed transcript into a finished blog
// article: it selects a section layout, rewrites each section from the
// matching topic segments, wraps the body in an introduction and
// conclusion, and runs the SEO pass over title, description, and slug.
//
// This file defines the Article Structurer. Structure selection is a
// lookup, not an algorithm: there are exactly two five-section templates,
// keyed by the classified purpose, with the problem-solving layout as the
// fallback for every other purpose.
package article

import (
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// Structurer selects the article section layout for a classified purpose.
type Structurer struct {
	templates map[model.Purpose][]*model.SectionDef
}

// NewStructurer builds a Structurer with the two built-in layouts.
func NewStructurer() *Structurer {
	return &Structurer{
		templates: map[model.Purpose][]*model.SectionDef{
			model.PurposeProblemSolving: {
				{Type: model.SectionProblem, Title: "動画クリエイターが直面する課題"},
				{Type: model.SectionSolution, Title: "解決策：自動化システムの導入"},
				{Type: model.SectionBenefits, Title: "システム導入で得られる5つのメリット"},
				{Type: model.SectionHowTo, Title: "実際の使い方"},
				{Type: model.SectionResults, Title: "期待される成果"},
			},
			model.PurposeProposal: {
				{Type: model.SectionProblem, Title: "動画制作後の作業が大変すぎる問題"},
				{Type: model.SectionSolution, Title: "AI自動化システムという解決策"},
				{Type: model.SectionBenefits, Title: "このシステムがもたらす革新的なメリット"},
				{Type: model.SectionHowTo, Title: "システムの使い方はとてもシンプル"},
				{Type: model.SectionResults, Title: "導入後の劇的な変化"},
			},
		},
	}
}

// Design returns the section layout for the analysis: the proposal
// template for proposal-classified content, otherwise the problem-solving
// template. Emphasis carries the top three main points into the rewriter.
func (s *Structurer) Design(analysis *model.ContentAnalysis) *model.ArticleStructure {
	sections, ok := s.templates[analysis.Purpose]
	if !ok {
		sections = s.templates[model.PurposeProblemSolving]
	}

	emphasis := analysis.MainPoints
	if len(emphasis) > 3 {
		emphasis = emphasis[:3]
	}

	return &model.ArticleStructure{
		Sections: sections,
		Flow:     "problem-solution",
		Emphasis: emphasis,
	}
}
