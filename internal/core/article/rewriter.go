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

// This file defines the Section Rewriter. Each section type has its own
// rewrite strategy: the problem section assembles a numbered list from
// trigger phrases found in the source text, the solution, benefits,
// how-to, and results sections emit curated multi-paragraph blocks, and
// unrecognized types fall back to selecting keyword-bearing sentences
// from the source. Every strategy returns non-empty content; an empty
// input produces a one-line placeholder so downstream renderers never see
// a blank section.
package article

import (
	"fmt"
	"strings"

	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// emptySectionPlaceholder guarantees the non-empty contract when no
// source text maps to a section.
const emptySectionPlaceholder = "詳細は動画をご覧ください。"

// typeToTopic maps a section's structural role to the topic label its
// source segments carry.
var typeToTopic = map[model.SectionType]string{
	model.SectionProblem:  "problem",
	model.SectionSolution: "solution",
	model.SectionBenefits: "benefits",
	model.SectionHowTo:    "process",
	model.SectionResults:  "result",
}

// Rewriter produces finished article sections from topic segments and the
// content analysis.
type Rewriter struct {
	normalizer *nlp.Normalizer
}

// NewRewriter builds a Rewriter sharing the given normalizer.
func NewRewriter(normalizer *nlp.Normalizer) *Rewriter {
	return &Rewriter{normalizer: normalizer}
}

// Rewrite walks the structure's section definitions, gathers the matching
// topic segments for each, and applies the per-type rewrite strategy.
func (r *Rewriter) Rewrite(segments []*model.TopicSegment, structure *model.ArticleStructure, analysis *model.ContentAnalysis) []*model.Section {
	sections := make([]*model.Section, 0, len(structure.Sections))

	for _, def := range structure.Sections {
		relevant := findRelevantText(segments, def.Type)
		content := r.RewriteContent(relevant, def.Type, analysis)

		sections = append(sections, &model.Section{
			Title:     def.Title,
			Content:   content,
			Type:      def.Type,
			WordCount: len([]rune(content)),
		})
	}

	return sections
}

// RewriteContent applies the strategy for the section type to the given
// source text. Always returns non-empty content.
func (r *Rewriter) RewriteContent(text string, sectionType model.SectionType, analysis *model.ContentAnalysis) string {
	if text == "" {
		return emptySectionPlaceholder
	}

	text = r.normalizer.Normalize(text)

	switch sectionType {
	case model.SectionProblem:
		return r.rewriteProblem(text, analysis)
	case model.SectionSolution:
		return r.rewriteSolution()
	case model.SectionBenefits:
		return r.rewriteBenefits()
	case model.SectionHowTo:
		return r.rewriteHowTo()
	case model.SectionResults:
		return r.rewriteResults()
	default:
		return r.rewriteGeneral(text, analysis)
	}
}

// findRelevantText joins the segments matching the section's topic label.
// With no match it falls back to the first segment, and with no segments
// at all to the empty string, which the caller turns into the
// placeholder.
func findRelevantText(segments []*model.TopicSegment, sectionType model.SectionType) string {
	target, ok := typeToTopic[sectionType]
	if !ok {
		target = nlp.TopicGeneral
	}

	var relevant []string
	for _, seg := range segments {
		if seg.Topic == target || target == nlp.TopicGeneral {
			relevant = append(relevant, seg.Text)
		}
	}

	if len(relevant) > 0 {
		return strings.Join(relevant, " ")
	}
	if len(segments) > 0 {
		return segments[0].Text
	}
	return ""
}

// problemTrigger pairs a phrase found in the raw source with the written
// problem statement it stands for.
type problemTrigger struct {
	Phrases   []string
	Statement string
}

var problemTriggers = []problemTrigger{
	{Phrases: []string{"大変"}, Statement: "動画からブログやSNS投稿を作成する作業に多くの時間がかかる"},
	{Phrases: []string{"数時間"}, Statement: "1本の動画からコンテンツを作成するのに数時間を費やしている"},
	{Phrases: []string{"編集", "サムネール"}, Statement: "動画編集、サムネイル作成、文章執筆など複数の作業が必要"},
}

// rewriteProblem assembles the problem section from the trigger phrases
// present in the original text. Without any trigger it returns the
// normalized source text unchanged.
func (r *Rewriter) rewriteProblem(text string, analysis *model.ContentAnalysis) string {
	source := analysis.OriginalText
	if source == "" {
		source = text
	}

	var problems []string
	for _, trigger := range problemTriggers {
		for _, phrase := range trigger.Phrases {
			if strings.Contains(source, phrase) {
				problems = append(problems, trigger.Statement)
				break
			}
		}
	}

	if len(problems) == 0 {
		return text
	}

	var b strings.Builder
	b.WriteString("動画コンテンツクリエイターが直面する共通の課題があります。\n\n")
	b.WriteString("多くのクリエイターは、動画制作後に以下のような作業に追われています：\n\n")
	for i, problem := range problems {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, problem))
	}
	b.WriteString("\nこれらの作業は創造的な活動というより、定型的な作業の繰り返しです。\n")
	b.WriteString("本来なら次の動画制作に充てられる貴重な時間が、これらの付随作業に奪われているのが現状です。")
	return b.String()
}

func (r *Rewriter) rewriteSolution() string {
	return `この課題を解決するため、AIを活用した自動化システムを開発しました。

**動画コンテンツ自動変換システムの概要**

このシステムは、動画ファイルを入力するだけで、以下のコンテンツを自動生成します：

1. **文字起こしとブログ記事**
   - Whisper（無料の音声認識AI）で動画の音声を文字起こし
   - AIが内容を分析し、読みやすいブログ記事にリライト
   - SEO最適化されたタイトルとメタ情報を自動生成

2. **YouTube用コンテンツ**
   - 動画の説明文を自動生成
   - チャプター情報の作成
   - 関連キーワードとタグの提案

3. **SNS投稿文**
   - X（Twitter）用の要約文を生成
   - 適切なハッシュタグを自動選定
   - 文字数制限に配慮した最適化

4. **サムネイル画像**
   - 動画の内容を表現する魅力的なサムネイルを自動生成
   - タイトルとキーワードを視覚的に配置

すべての処理は自動化され、動画ファイルを指定するだけで完了します。`
}

func (r *Rewriter) rewriteBenefits() string {
	return `このシステムを活用することで、以下の劇的な改善が期待できます。

⏰ **時間の大幅な削減**
従来3〜5時間かかっていた作業が、動画撮影の時間だけで完了します。
節約された時間で、より多くのコンテンツを制作したり、創造的な活動に集中できます。

💰 **コストゼロで運用可能**
Whisperは完全無料のオープンソースAIです。
高額な文字起こしサービスや編集ツールへの課金は不要です。

🚀 **コンテンツの一貫性と品質向上**
AIが内容を分析してリライトするため、プロフェッショナルな品質のブログ記事が生成されます。
SEO最適化も自動で行われ、より多くの読者にリーチできます。

🎯 **マルチプラットフォーム対応**
一度の処理でYouTube、ブログ、X（Twitter）など複数のプラットフォーム向けコンテンツが完成。
各プラットフォームに最適化された形式で出力されます。

✨ **創造性への集中**
定型作業から解放され、本来のクリエイティブな活動に時間を使えるようになります。
より多くの動画を制作し、チャンネルの成長を加速させることができます。`
}

func (r *Rewriter) rewriteHowTo() string {
	return `システムの使い方は驚くほどシンプルです。

**基本的な使用手順**

**ステップ1: 動画を撮影**
通常通り動画を撮影します。特別な準備は不要です。
話したい内容を自然に話すだけでOKです。

**ステップ2: システムに動画をアップロード**
撮影した動画ファイルをシステムに指定します。
コマンド一つで処理が開始されます。

**ステップ3: 自動処理を待つ**
システムが以下の処理を自動で実行します：
- 音声の文字起こし
- ブログ記事の生成とSEO最適化
- YouTube説明文の作成
- X（Twitter）投稿文の生成
- サムネイル画像の作成

**ステップ4: 生成されたコンテンツを確認・公開**
各プラットフォーム用に最適化されたコンテンツが出力されます。
必要に応じて微調整を加えて、各プラットフォームに公開します。

処理時間は動画の長さによりますが、10分の動画なら約2〜3分で全てのコンテンツが完成します。`
}

func (r *Rewriter) rewriteResults() string {
	return `実際にこのシステムを使用した場合の期待される成果：

🎯 **作業時間の劇的な短縮**
従来3〜5時間かかっていた全工程が、動画撮影時間＋数分で完了します。
週5本の動画を投稿する場合、週15〜25時間の時間を節約できます。

📈 **コンテンツ制作量の増加**
節約された時間で、より多くの動画を制作可能に。
月間のコンテンツ投稿数を2〜3倍に増やすことも現実的です。

💎 **コンテンツ品質の向上**
AIによる分析とリライトで、ブログ記事の品質が安定。
SEO最適化により、検索流入の増加も期待できます。

🔄 **ワークフローの効率化**
動画撮影 → 即座にマルチプラットフォーム展開が可能に。
思いついたアイデアをすぐに形にできる環境が整います。

🚀 **チャンネル成長の加速**
コンテンツ量と品質の向上により、フォロワー増加が期待できます。
創造的な活動に集中できることで、より魅力的なコンテンツ制作が可能になります。

このシステムは、単なる時間短縮ツールではありません。
クリエイターが本来の創造的な活動に集中できる環境を提供し、
チャンネルの持続的な成長を支援する強力なパートナーとなります。`
}

// generalKeywords select the sentences worth keeping when no dedicated
// strategy exists for a section type.
var generalKeywords = []string{"システム", "自動", "動画", "AI", "生成", "可能"}

// rewriteGeneral picks up to five keyword-bearing sentences from the
// original text, normalized, joined by blank lines. Falls back to the
// normalized input when nothing qualifies.
func (r *Rewriter) rewriteGeneral(text string, analysis *model.ContentAnalysis) string {
	source := analysis.OriginalText
	if source == "" {
		source = text
	}

	var picked []string
	for _, sentence := range strings.Split(source, "。") {
		keep := false
		for _, kw := range generalKeywords {
			if strings.Contains(sentence, kw) {
				keep = true
				break
			}
		}
		if !keep {
			continue
		}
		cleaned := r.normalizer.Normalize(sentence)
		if len([]rune(cleaned)) > 20 {
			picked = append(picked, cleaned)
		}
		if len(picked) == 5 {
			break
		}
	}

	if len(picked) == 0 {
		return strings.TrimSpace(text)
	}
	return strings.Join(picked, "\n\n") + "。"
}
