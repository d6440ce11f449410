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

// This file tests structure selection, the introduction and conclusion
// builders, and the optimizer end to end.
package article_test

import (
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/stretchr/testify/assert"
)

// TestStructurerDesign verifies template selection per purpose and the
// problem-solving fallback for purposes without a dedicated layout.
func TestStructurerDesign(t *testing.T) {
	s := article.NewStructurer()

	proposal := s.Design(&model.ContentAnalysis{Purpose: model.PurposeProposal})
	assert.Equal(t, 5, len(proposal.Sections))
	assert.Equal(t, "動画制作後の作業が大変すぎる問題", proposal.Sections[0].Title)
	assert.Equal(t, "problem-solution", proposal.Flow)

	fallback := s.Design(&model.ContentAnalysis{Purpose: model.PurposeEducation})
	assert.Equal(t, "動画クリエイターが直面する課題", fallback.Sections[0].Title)
	assert.Equal(t, model.SectionResults, fallback.Sections[4].Type)
}

// TestStructurerEmphasisCap verifies that only the top three main points
// carry into the structure.
func TestStructurerEmphasisCap(t *testing.T) {
	s := article.NewStructurer()

	points := []*model.MainPoint{{Text: "1"}, {Text: "2"}, {Text: "3"}, {Text: "4"}, {Text: "5"}}
	structure := s.Design(&model.ContentAnalysis{Purpose: model.PurposeProposal, MainPoints: points})
	assert.Equal(t, 3, len(structure.Emphasis))
	assert.Equal(t, "1", structure.Emphasis[0].Text)
}

// TestBuildIntroduction verifies the audience lookup and the default for
// audiences without a dedicated opening.
func TestBuildIntroduction(t *testing.T) {
	creator := article.BuildIntroduction(&model.TargetAudience{Primary: model.AudienceCreator})
	assert.Contains(t, creator, "クロード（Claude）")

	business := article.BuildIntroduction(&model.TargetAudience{Primary: model.AudienceBusiness})
	assert.Contains(t, business, "完全無料")
}

// TestBuildConclusion verifies the fixed summary block and the
// audience-specific call to action.
func TestBuildConclusion(t *testing.T) {
	engineer := article.BuildConclusion(&model.TargetAudience{Primary: model.AudienceEngineer})
	assert.Contains(t, engineer, "## まとめ")
	assert.Contains(t, engineer, "GitHub")

	business := article.BuildConclusion(&model.TargetAudience{Primary: model.AudienceBusiness})
	assert.Contains(t, business, "生産性は飛躍的に向上")
}

// TestOptimizerEndToEnd runs the whole article stage over a realistic
// spoken transcript and checks the assembled artifact.
func TestOptimizerEndToEnd(t *testing.T) {
	o := article.NewOptimizer()

	transcript := &model.Transcript{
		Text: "えっと、動画の編集って大変なんですよ。サムネール作りに数時間かかることもあります。" +
			"それで、クロードと一緒に自動のシステムを作りました。ということで、動画からブログ記事を自動で生成できます。",
		Language: "ja",
		Duration: 60,
	}

	blog := o.Optimize(transcript, "動画コンテンツ自動化の話")

	assert.Equal(t, 5, len(blog.Sections))
	assert.NotEmpty(t, blog.Title)
	assert.NotEmpty(t, blog.Introduction)
	assert.Contains(t, blog.Conclusion, "## まとめ")
	assert.NotEmpty(t, blog.MetaDescription)
	assert.NotEmpty(t, blog.Slug)
	assert.True(t, blog.ReadingTime >= 1)
	assert.Equal(t, model.AudienceCreator, blog.TargetAudience.Primary)
	assert.Equal(t, 5, len(blog.MainPoints))

	for _, section := range blog.Sections {
		assert.NotEmpty(t, section.Content)
	}
}
