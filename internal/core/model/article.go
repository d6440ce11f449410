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

// This file contains the article-side types: the structural template the
// structurer selects, the rewritten sections, and the aggregate blog
// output handed to the renderer and the channel formatters.
package model

// SectionType is the structural role of an article section. It drives
// which rewrite strategy applies and which topic segments feed it.
type SectionType string

const (
	SectionProblem  SectionType = "problem"
	SectionSolution SectionType = "solution"
	SectionBenefits SectionType = "benefits"
	SectionHowTo    SectionType = "how_to"
	SectionResults  SectionType = "results"
)

// SectionDef is one entry of a structure template: the role of the
// section plus its heading.
type SectionDef struct {
	Type  SectionType `json:"type"`
	Title string      `json:"title"`
}

// ArticleStructure is the selected five-section layout plus the points
// the rewriter should emphasize.
type ArticleStructure struct {
	Sections []*SectionDef `json:"sections"`
	Flow     string        `json:"flow"` // Always "problem-solution" for the built-in templates.
	Emphasis []*MainPoint  `json:"emphasis"`
}

// Section is a finished article section. Content is produced once by the
// rewrite strategy for its type and never revisited.
type Section struct {
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Type      SectionType `json:"type"`
	WordCount int         `json:"word_count"` // Character count of Content.
}

// BlogContent is the terminal article artifact. The channel formatters
// and file writers read it; nothing mutates it after assembly.
type BlogContent struct {
	Title           string          `json:"title"`
	MetaDescription string          `json:"meta_description"`
	Introduction    string          `json:"introduction"`
	Sections        []*Section      `json:"sections"`
	Conclusion      string          `json:"conclusion"`
	Keywords        []string        `json:"keywords"`
	TargetAudience  *TargetAudience `json:"target_audience"`
	ReadingTime     int             `json:"reading_time"` // Minutes, chars/400, minimum 1.
	Tone            Tone            `json:"tone"`
	MainPoints      []*MainPoint    `json:"main_points"`
	Slug            string          `json:"slug"`
}
