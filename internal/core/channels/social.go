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

// This file defines the social-post formatter. It produces five template
// variations (hook, benefit, question, statistics, announcement) plus an
// optional multi-part thread. Every variation reserves a fixed character
// budget for the shortened link and appends hashtags only when the
// combined length still fits the cap, so no emitted post can exceed the
// configured max length.
package channels

import (
	"strings"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// linkBudget is the character count reserved for a shortened link
// (t.co-style URLs always occupy 23 characters).
const linkBudget = 23

// Variation style keys, in emission order.
const (
	StyleHook         = "hook_style"
	StyleBenefit      = "benefit_style"
	StyleQuestion     = "question_style"
	StyleStatistics   = "statistics_style"
	StyleAnnouncement = "announcement_style"
)

// SocialFormatter builds short social posts from the article content.
type SocialFormatter struct {
	cfg config.Social
}

// NewSocialFormatter builds a formatter with the social channel settings.
func NewSocialFormatter(cfg config.Social) *SocialFormatter {
	return &SocialFormatter{cfg: cfg}
}

// GenerateVariations produces all post styles and, when thread mode is
// on, the multi-part thread.
func (f *SocialFormatter) GenerateVariations(blog *model.BlogContent) *model.SocialPosts {
	posts := &model.SocialPosts{
		Variations: map[string]string{
			StyleHook:         f.hookStyle(blog),
			StyleBenefit:      f.benefitStyle(),
			StyleQuestion:     f.questionStyle(),
			StyleStatistics:   f.statisticsStyle(),
			StyleAnnouncement: f.announcementStyle(),
		},
	}
	if f.cfg.ThreadMode {
		posts.Thread = f.thread()
	}
	return posts
}

// SimplePost builds the single-post form: title banner, summary, and
// hashtags, fitted into the length cap.
func (f *SocialFormatter) SimplePost(title, text string) string {
	summary := nlp.Summarize(text, 100)
	post := "【" + title + "】\n" + summary

	hashtags := ""
	if f.cfg.AddHashtags {
		keywords := nlp.ExtractKeywords(text, f.cfg.MaxHashtags)
		if len(keywords) > 3 {
			keywords = keywords[:3]
		}
		parts := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			parts = append(parts, "#"+kw)
		}
		hashtags = strings.Join(parts, " ")
		if hashtags != "" {
			post += "\n\n" + hashtags
		}
	}

	if max := f.cfg.MaxLength; max > 0 && len([]rune(post)) > max {
		budget := max - len([]rune(hashtags)) - 10
		if budget < 0 {
			budget = 0
		}
		body := []rune(summary)
		if len(body) > budget {
			body = body[:budget]
		}
		post = "【" + title + "】\n" + string(body) + "..."
		if hashtags != "" {
			post += "\n\n" + hashtags
		}
		// The banner itself can overflow the cap with extreme titles.
		if runes := []rune(post); len(runes) > max {
			post = string(runes[:max-3]) + "..."
		}
	}
	return post
}

func (f *SocialFormatter) hookStyle(blog *model.BlogContent) string {
	post := `動画制作者必見！

動画ファイル1つで、ブログ・SNS投稿・サムネイルが自動生成

✅ Whisper（無料）で文字起こし
✅ AIが自動でリライト
✅ 作業時間を3-5時間→数分に短縮

詳細はブログで👇
`
	post = f.fitWithLink(post)
	return f.appendHashtags(post, f.smartHashtags(blog))
}

func (f *SocialFormatter) benefitStyle() string {
	post := `【もう動画の後処理で消耗しない】

従来：動画撮影→編集→ブログ執筆→SNS投稿→サムネ作成
👉 3〜5時間の作業

これから：動画撮影→自動化システム
👉 数分で全て完成

空いた時間で次の動画制作へ💪

仕組みの詳細→`
	post = f.fitWithLink(post)
	return f.appendHashtags(post, []string{"動画制作", "AI活用"})
}

func (f *SocialFormatter) questionStyle() string {
	post := `動画投稿後、こんな作業してませんか？

☑️ ブログ記事を1から書く
☑️ SNS用に要約文を作成
☑️ サムネイルをデザイン
☑️ 各プラットフォームに最適化

実はこれ、全部自動化できます。

その方法とは？→`
	return f.fitWithLink(post)
}

func (f *SocialFormatter) statisticsStyle() string {
	post := `【数字で見る動画制作の効率化】

Before:
・ブログ執筆：90分
・SNS投稿作成：30分
・サムネ制作：60分
計：3時間

After:
・全自動処理：3分
⏰ 97%の時間削減

実現方法を解説↓`
	post = f.fitWithLink(post)
	return f.appendHashtags(post, []string{"生産性向上", "DX"})
}

func (f *SocialFormatter) announcementStyle() string {
	post := `🎬 新記事公開

「動画からブログ＋SNSを作る話」

動画ファイル1つで
・ブログ記事（SEO最適化済）
・YouTube説明文
・SNS投稿文
・サムネイル画像

すべて自動生成する仕組みを解説しました。

▼詳細はこちら`
	return f.fitWithLink(post)
}

func (f *SocialFormatter) thread() []string {
	thread := []string{
		`動画クリエイターの皆さん、
動画投稿後の作業、大変じゃないですか？

ブログ書いて、SNS投稿作って、サムネイル作って...

実は、これ全部自動化できるんです。

その方法を解説します🧵`,
		`多くのクリエイターが直面する問題：

1️⃣ 1本の動画から派生コンテンツ作成に3-5時間
2️⃣ 各プラットフォームごとに最適化が必要
3️⃣ 本来の創作活動の時間が削られる

これ、AIで解決できます。`,
		`解決策：動画自動変換システム

🎯 Whisper（無料）で文字起こし
🎯 AIがブログ記事にリライト
🎯 各SNS用に最適化
🎯 サムネイルも自動生成

動画ファイルを入力するだけ！`,
		`導入メリット：

✅ 作業時間97%削減
✅ 完全無料で運用可能
✅ SEO最適化済みコンテンツ
✅ マルチプラットフォーム対応

浮いた時間で、より多くの動画制作が可能に。`,
	}

	cta := `詳しい実装方法はブログで解説しています。

気になる方はぜひチェックしてみてください👇
`
	if f.cfg.IncludeLink {
		cta += "\n[ブログURL]"
	}
	return append(thread, cta)
}

// fitWithLink truncates the post so the configured max length still has
// room for a shortened link and a separating space.
func (f *SocialFormatter) fitWithLink(post string) string {
	if !f.cfg.IncludeLink {
		return post
	}
	available := f.cfg.MaxLength - linkBudget - 1
	runes := []rune(post)
	if len(runes) > available {
		post = string(runes[:available-3]) + "..."
	}
	return post
}

// appendHashtags adds the tag line only when the combined post still fits
// the length cap.
func (f *SocialFormatter) appendHashtags(post string, hashtags []string) string {
	if !f.cfg.AddHashtags || len(hashtags) == 0 {
		return post
	}
	parts := make([]string, 0, len(hashtags))
	for _, tag := range hashtags {
		parts = append(parts, "#"+tag)
	}
	line := strings.Join(parts, " ")
	if len([]rune(post))+len([]rune(line))+2 <= f.cfg.MaxLength {
		return post + "\n\n" + line
	}
	return post
}

// smartHashtags combines the short keywords among the article's top
// three with context-sensitive tool tags and the default tags,
// deduplicated, capped at four.
func (f *SocialFormatter) smartHashtags(blog *model.BlogContent) []string {
	var hashtags []string
	top := blog.Keywords
	if len(top) > 3 {
		top = top[:3]
	}
	for _, kw := range top {
		if len([]rune(kw)) <= 10 {
			hashtags = append(hashtags, kw)
		}
	}

	// Tool tags only when the article actually mentions the tool.
	var sb strings.Builder
	sb.WriteString(blog.Title)
	sb.WriteString(blog.Introduction)
	for _, section := range blog.Sections {
		sb.WriteString(section.Content)
	}
	sb.WriteString(blog.Conclusion)
	text := sb.String()
	if strings.Contains(text, "Whisper") {
		hashtags = append(hashtags, "Whisper")
	}
	if strings.Contains(text, "Claude") {
		hashtags = append(hashtags, "Claude")
	}

	hashtags = append(hashtags, "動画制作", "AI活用", "ブログ自動化", "時短")

	seen := make(map[string]bool)
	deduped := make([]string, 0, len(hashtags))
	for _, tag := range hashtags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		deduped = append(deduped, tag)
	}
	if len(deduped) > 4 {
		deduped = deduped[:4]
	}
	return deduped
}
