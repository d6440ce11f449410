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

// This file defines the Optimizer, the orchestrator of the text-to-article
// transformation.
//
// Logic Flow:
//  1. Analyze the transcript text (tone, purpose, main points, value
//     proposition) and identify the target audience.
//  2. Design the article structure from the classified purpose.
//  3. Segment the transcript by topic and rewrite each structural section
//     from its matching segments.
//  4. Build the audience-specific introduction and conclusion.
//  5. Run the SEO pass and assemble the final BlogContent.
//
// Data flows strictly one way; nothing here mutates the transcript or the
// analysis after creation.
package article

import (
	"log/slog"

	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// Optimizer turns a transcript into a finished blog article.
type Optimizer struct {
	analyzer   *nlp.Analyzer
	segmenter  *nlp.Segmenter
	structurer *Structurer
	rewriter   *Rewriter
	seo        *SEOProcessor
}

// NewOptimizer wires the full article stage from its parts.
func NewOptimizer() *Optimizer {
	normalizer := nlp.NewNormalizer()
	return &Optimizer{
		analyzer:   nlp.NewAnalyzer(),
		segmenter:  nlp.NewSegmenter(),
		structurer: NewStructurer(),
		rewriter:   NewRewriter(normalizer),
		seo:        NewSEOProcessor(),
	}
}

// Optimize produces the complete article for a transcript and title.
//
// Inputs:
//   - transcript: The structured transcription output.
//   - title: The working title for the video.
//
// Outputs:
//   - *model.BlogContent: The finished article artifact.
func (o *Optimizer) Optimize(transcript *model.Transcript, title string) *model.BlogContent {
	slog.Info("optimizing article", "title", title, "chars", len([]rune(transcript.Text)))

	analysis := o.analyzer.Analyze(transcript.Text)
	audience := o.analyzer.IdentifyTargetAudience(transcript.Text)
	structure := o.structurer.Design(analysis)

	segments := o.segmenter.Segment(transcript.Text)
	sections := o.rewriter.Rewrite(segments, structure, analysis)

	introduction := BuildIntroduction(audience)
	conclusion := BuildConclusion(audience)
	seo := o.seo.Optimize(title, analysis)

	return &model.BlogContent{
		Title:           seo.OptimizedTitle,
		MetaDescription: seo.MetaDescription,
		Introduction:    introduction,
		Sections:        sections,
		Conclusion:      conclusion,
		Keywords:        seo.Keywords,
		TargetAudience:  audience,
		ReadingTime:     ReadingTime(introduction, sections, conclusion),
		Tone:            analysis.Tone,
		MainPoints:      analysis.MainPoints,
		Slug:            seo.Slug,
	}
}
