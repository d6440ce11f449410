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

// This file holds the introduction and conclusion builders. Both are
// template lookups keyed by the primary audience; the conclusion wraps a
// fixed summary block around a per-audience call to action.
package article

import (
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

var introductions = map[model.Audience]string{
	model.AudienceCreator: `動画を撮影して、編集して、YouTubeにアップロード。でも、それだけで終わりじゃないですよね。

ブログ記事を書いて、SNSで告知して、サムネイルも作って…。気がつけば、1本の動画のために3〜5時間も費やしている。そんな経験、ありませんか？

今回は、ビジネス仲間との会話から生まれた画期的なアイデアをご紹介します。動画ファイル一つで、ブログ記事もSNS投稿もサムネイルも、すべて自動で作成できるシステムです。

実際にクロード（Claude）を使って実装してみたところ、想像以上の可能性が見えてきました。`,
	model.AudienceEngineer: `動画コンテンツの制作において、最も時間がかかるのは撮影や編集だけではありません。

実は、動画公開後の各種コンテンツ作成（ブログ記事、SNS投稿、サムネイル画像など）に、多くのクリエイターが膨大な時間を費やしています。

本記事では、OpenAIのWhisperとAIを組み合わせた自動化システムの実装について解説します。このシステムにより、動画ファイルから自動的に高品質なマルチプラットフォーム向けコンテンツを生成できます。`,
}

var introductionDefault = `「動画を作るのは楽しいけど、その後の作業が大変…」

YouTubeに動画をアップロードした後、ブログを書いて、TwitterやInstagramに投稿して、魅力的なサムネイルも作って。これらの作業に、どれくらい時間をかけていますか？

実は、これらすべての作業を自動化できる方法があります。しかも、完全無料で。

今回は、AIを活用した革新的なコンテンツ自動生成システムについて、実際の開発経験をもとにお話しします。`

var conclusionCTAs = map[model.Audience]string{
	model.AudienceBusiness: `このシステムを導入することで、あなたのチームの生産性は飛躍的に向上するでしょう。

まずは小規模なプロジェクトから始めて、効果を実感してみてください。`,
	model.AudienceCreator: `動画制作は楽しいものです。でも、その後の作業に時間を奪われていては、本来の創造性を発揮できません。

このシステムを使えば、あなたはもっと多くの素晴らしいコンテンツを世に送り出せるはずです。

今日から、創作活動に集中できる環境を手に入れましょう。`,
	model.AudienceEngineer: `本システムはオープンソースの技術を組み合わせて実装されています。

技術的な詳細に興味がある方は、ぜひGitHubリポジトリをご覧ください。プルリクエストも歓迎します。`,
	model.AudienceGeneral: `難しそうに見えるかもしれませんが、実際の使い方はとてもシンプルです。

まずは一度試してみることから始めてみませんか？きっと、その便利さに驚かれることでしょう。`,
}

// BuildIntroduction returns the opening passage for the primary audience.
// Creators and engineers get dedicated openings; everyone else gets the
// general one.
func BuildIntroduction(audience *model.TargetAudience) string {
	if intro, ok := introductions[audience.Primary]; ok {
		return intro
	}
	return introductionDefault
}

// BuildConclusion returns the closing summary with the audience-specific
// call to action embedded.
func BuildConclusion(audience *model.TargetAudience) string {
	cta, ok := conclusionCTAs[audience.Primary]
	if !ok {
		cta = conclusionCTAs[model.AudienceGeneral]
	}

	return `## まとめ

動画制作後の煩雑な作業から解放され、本来の創造的な活動に集中できる。それが、このシステムが提供する最大の価値です。

Whisperによる高精度な文字起こし、AIによる自然な文章へのリライト、各プラットフォームに最適化されたコンテンツの自動生成。これらすべてが、動画ファイル一つで実現します。

` + cta + `

この記事が、あなたのコンテンツ制作活動の効率化に少しでも役立てば幸いです。`
}
