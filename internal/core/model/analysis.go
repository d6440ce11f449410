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

// This file contains the derived records the content analyzer produces.
// They are transient: built once per run from the Transcript, read by the
// structuring, rewriting, and SEO stages, and never persisted on their own
// (only as fields of the final blog output).
package model

// Tone labels the overall register of the source speech. Values are the
// Japanese display labels emitted into article metadata.
type Tone string

const (
	ToneCasual    Tone = "カジュアル・親しみやすい"
	ToneFormal    Tone = "フォーマル・専門的"
	ToneEmotional Tone = "情熱的・エモーショナル"
	ToneBalanced  Tone = "バランス型・説明的"
)

// Purpose labels the inferred communicative intent of the source video.
type Purpose string

const (
	PurposeProblemSolving    Purpose = "問題解決"
	PurposeInfoSharing       Purpose = "情報共有"
	PurposeEducation         Purpose = "教育"
	PurposeProposal          Purpose = "提案"
	PurposeExperienceSharing Purpose = "体験共有"
)

// Audience labels the primary target reader group.
type Audience string

const (
	AudienceBusiness Audience = "ビジネスパーソン"
	AudienceCreator  Audience = "クリエイター"
	AudienceEngineer Audience = "エンジニア"
	AudienceGeneral  Audience = "一般ユーザー"
)

// Importance grades a main point.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
)

// MainPoint is a single headline statement extracted from the content.
type MainPoint struct {
	Text       string     `json:"text"`
	Importance Importance `json:"importance"`
}

// TargetAudience describes who the generated article is written for.
// Interests are fixed per label; pain points mix regex hits from the
// source text with per-label defaults, deduplicated and capped at five.
type TargetAudience struct {
	Primary    Audience `json:"primary"`
	Interests  []string `json:"interests"`
	PainPoints []string `json:"pain_points"`
}

// ContentAnalysis is the analyzer's aggregate output: tone, purpose,
// headline points, and the extracted value proposition, together with the
// original text the later stages quote from.
type ContentAnalysis struct {
	Tone             Tone         `json:"tone"`
	MainPoints       []*MainPoint `json:"main_points"`
	Purpose          Purpose      `json:"purpose"`
	ValueProposition string       `json:"value_proposition"`
	OriginalText     string       `json:"-"`
}

// TopicSegment is a run of sentences sharing one coarse topic label.
type TopicSegment struct {
	Text  string `json:"text"`
	Topic string `json:"topic"` // One of problem/solution/benefits/process/result/general.
}
