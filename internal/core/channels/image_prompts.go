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

// This file defines the image prompt generator. Thumbnails come in three
// strategies (impact, curiosity, authority), each with its own prompt
// template and a randomly decorated overlay title; blog images get a
// featured prompt plus up to three section prompts. The random source is
// injected so tests can pin the decoration choices.
package channels

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// ThumbnailPrompt is one generated thumbnail strategy.
type ThumbnailPrompt struct {
	Strategy     string // impact, curiosity, or authority.
	Name         string // Japanese display name of the strategy.
	Prompt       string // Diffusion prompt text.
	OverlayTitle string // Decorated title for the text overlay.
}

// SectionPrompt is one generated blog-section image prompt.
type SectionPrompt struct {
	Section string
	Prompt  string
	Index   int
}

// titleDecoration is a prefix/suffix pair applied to an overlay title.
type titleDecoration struct {
	Prefixes []string
	Suffixes []string
}

var decorations = map[string]titleDecoration{
	"impact": {
		Prefixes: []string{"衝撃!", "緊急!", "警告:", "⚠️", "🔥"},
		Suffixes: []string{"【必見】", "【緊急】", "【重要】", "!?", "!!!"},
	},
	"curiosity": {
		Prefixes: []string{"秘密の", "驚愕の", "謎の", "🤔", "💡"},
		Suffixes: []string{"の真実", "の裏側", "とは?", "【衝撃】", "【謎】"},
	},
	"authority": {
		Prefixes: []string{"プロが教える", "専門家解説", "完全解説:", "📚", "🎓"},
		Suffixes: []string{"【完全版】", "【詳細解説】", "【プロ監修】", "ガイド", "マスター"},
	},
}

// PromptGenerator builds image prompts for thumbnails and blog images.
type PromptGenerator struct {
	rng *rand.Rand
}

// NewPromptGenerator builds a generator over the given random source. A
// seeded source makes the overlay decoration deterministic for tests.
func NewPromptGenerator(rng *rand.Rand) *PromptGenerator {
	return &PromptGenerator{rng: rng}
}

// ThumbnailPrompts builds the three strategy prompts for a video.
func (g *PromptGenerator) ThumbnailPrompts(title string, transcript *model.Transcript) []*ThumbnailPrompt {
	keywords := nlp.ExtractKeywords(transcript.Text, 3)
	keywordStr := strings.Join(keywords, ", ")

	return []*ThumbnailPrompt{
		{
			Strategy: "impact",
			Name:     "インパクト・ショック型",
			Prompt: fmt.Sprintf(`YouTube thumbnail style, dramatic and shocking visual,
bold red and yellow colors, high contrast lighting,
surprised expression, pointing gesture, large bold text overlay,
professional photography, studio lighting, 4K quality,
related to: %s, keywords: %s,
eye-catching, viral thumbnail design, clean composition`, title, keywordStr),
			OverlayTitle: g.decorate("impact", title, " "),
		},
		{
			Strategy: "curiosity",
			Name:     "ミステリー・好奇心型",
			Prompt: fmt.Sprintf(`YouTube thumbnail style, mysterious and intriguing visual,
orange and blue color scheme, question marks, hidden elements,
curious expression, raised eyebrow, mysterious lighting,
professional photography, soft shadows, 4K quality,
related to: %s, keywords: %s,
creates curiosity, mysterious atmosphere, engaging design`, title, keywordStr),
			OverlayTitle: g.decorate("curiosity", title, ""),
		},
		{
			Strategy: "authority",
			Name:     "エキスパート・権威型",
			Prompt: fmt.Sprintf(`YouTube thumbnail style, professional and trustworthy visual,
blue and green corporate colors, clean background,
confident expert pose, professional attire, clear lighting,
business photography, modern design, 4K quality,
related to: %s, keywords: %s,
authoritative, trustworthy, professional appearance`, title, keywordStr),
			OverlayTitle: g.decorate("authority", title, " "),
		},
	}
}

// FeaturedPrompt builds the blog featured-image prompt from the article
// keywords.
func (g *PromptGenerator) FeaturedPrompt(title string, blog *model.BlogContent) string {
	theme := "technology and innovation"
	if len(blog.Keywords) > 0 {
		top := blog.Keywords
		if len(top) > 3 {
			top = top[:3]
		}
		theme = strings.Join(top, ", ")
	}

	return fmt.Sprintf(`Create a professional blog featured image with modern design aesthetics.

MAIN ELEMENTS:
- Topic: "%s"
- Visual theme representing: %s
- Abstract or conceptual visualization (no text needed)
- Professional gradient background with subtle patterns
- Color scheme: Modern tech colors (blues, purples, or corporate colors)
- High-quality, eye-catching composition

COMPOSITION:
- Center-focused main visual element
- Balanced negative space
- Professional lighting and shadows
- Suitable for blog header (16:9 or similar ratio)

STYLE: Modern, professional, tech-oriented, clean design suitable for blog featured image`, title, theme)
}

// SectionPrompts builds prompts for up to three article sections.
func (g *PromptGenerator) SectionPrompts(sections []*model.Section) []*SectionPrompt {
	limit := len(sections)
	if limit > 3 {
		limit = 3
	}

	prompts := make([]*SectionPrompt, 0, limit)
	for i, section := range sections[:limit] {
		concept := section.Content
		if runes := []rune(concept); len(runes) > 100 {
			concept = string(runes[:100]) + "..."
		}

		prompts = append(prompts, &SectionPrompt{
			Section: section.Title,
			Index:   i + 1,
			Prompt: fmt.Sprintf(`Create a simple, clean illustration for a blog section.

SECTION THEME: "%s"
CONTENT CONTEXT: Illustrating the concept of %s

REQUIREMENTS:
- Simple, minimalist illustration
- Flat design or light 3D style
- Clear visual metaphor for the section topic
- Soft, friendly color palette
- No text or words in the image
- Square format (1:1 ratio)

STYLE: Minimal, friendly, professional illustration suitable for blog content`, section.Title, concept),
		})
	}
	return prompts
}

// decorate wraps the title in a randomly chosen prefix and suffix for the
// given strategy.
func (g *PromptGenerator) decorate(strategy, title, sep string) string {
	deco := decorations[strategy]
	prefix := deco.Prefixes[g.rng.Intn(len(deco.Prefixes))]
	suffix := deco.Suffixes[g.rng.Intn(len(deco.Suffixes))]
	return prefix + sep + title + sep + suffix
}
