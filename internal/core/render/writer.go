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

// Package render writes the finished article to disk as a static-site
// post: a YAML front matter header followed by an HTML fragment body.
//
// Logic Flow:
//  1. Build the date-based filename from the slug.
//  2. Marshal the front matter (layout, title, date, tags, excerpt,
//     reading time) as YAML between --- fences.
//  3. Render the body: introduction paragraphs, a table of contents when
//     the article has more than two sections, each section as an h2 block
//     with lists and inline emphasis converted to HTML, the conclusion,
//     and the article-meta footer.
//  4. Write the whole document to the run's output directory.
package render

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	emPattern     = regexp.MustCompile(`\*([^*]+)\*`)
	nonAnchorChar = regexp.MustCompile(`[^\w\s-]`)
	anchorSpaces  = regexp.MustCompile(`[-\s]+`)
	orderedPrefix = regexp.MustCompile(`^\d+\. `)
)

// audienceLabels maps the classified audience to the reader description
// shown in the article footer.
var audienceLabels = map[model.Audience]string{
	model.AudienceCreator:  "動画クリエイター・YouTuber",
	model.AudienceEngineer: "エンジニア・開発者",
	model.AudienceBusiness: "ビジネスパーソン・マーケター",
	model.AudienceGeneral:  "動画制作に興味がある方",
}

// frontMatter is the YAML header of a generated post. Field order is the
// emission order.
type frontMatter struct {
	Layout      string   `yaml:"layout"`
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Categories  []string `yaml:"categories"`
	Tags        []string `yaml:"tags"`
	Author      string   `yaml:"author"`
	Excerpt     string   `yaml:"excerpt"`
	Published   bool     `yaml:"published"`
	Comments    bool     `yaml:"comments"`
	VideoSource bool     `yaml:"video_source"`
	WordCount   int      `yaml:"word_count"`
	ReadingTime int      `yaml:"reading_time"`
}

// Writer renders BlogContent into a post file.
type Writer struct {
	cfg config.Blog
	now func() time.Time
}

// NewWriter builds a Writer with the blog settings.
func NewWriter(cfg config.Blog) *Writer {
	return &Writer{cfg: cfg, now: time.Now}
}

// NewWriterAt builds a Writer with a fixed clock, for tests.
func NewWriterAt(cfg config.Blog, now func() time.Time) *Writer {
	return &Writer{cfg: cfg, now: now}
}

// WritePost renders the article and writes it under outputDir as
// YYYY-MM-DD-<slug>.md. Returns the written path.
func (w *Writer) WritePost(blog *model.BlogContent, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	date := w.now()
	filename := fmt.Sprintf("%s-%s.md", date.Format("2006-01-02"), blog.Slug)
	path := filepath.Join(outputDir, filename)

	header, err := w.renderFrontMatter(blog, date)
	if err != nil {
		return "", err
	}
	body := w.renderBody(blog)

	if err := os.WriteFile(path, []byte(header+"\n"+body), 0o644); err != nil {
		return "", fmt.Errorf("failed to write post %q: %w", path, err)
	}
	return path, nil
}

func (w *Writer) renderFrontMatter(blog *model.BlogContent, date time.Time) (string, error) {
	tags := blog.Keywords
	if len(tags) > 10 {
		tags = tags[:10]
	}
	excerpt := []rune(blog.MetaDescription)
	if len(excerpt) > 160 {
		excerpt = excerpt[:160]
	}

	charCount := 0
	for _, section := range blog.Sections {
		charCount += section.WordCount
	}

	fm := frontMatter{
		Layout:      w.cfg.Layout,
		Title:       blog.Title,
		Date:        date.Format("2006-01-02 15:04:05 -0700"),
		Categories:  w.cfg.Categories,
		Tags:        tags,
		Author:      w.cfg.Author,
		Excerpt:     string(excerpt),
		Published:   true,
		Comments:    true,
		VideoSource: true,
		WordCount:   charCount,
		ReadingTime: blog.ReadingTime,
	}

	out, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal front matter: %w", err)
	}
	return "---\n" + string(out) + "---", nil
}

func (w *Writer) renderBody(blog *model.BlogContent) string {
	var lines []string

	for _, para := range strings.Split(blog.Introduction, "\n\n") {
		if p := strings.TrimSpace(para); p != "" {
			lines = append(lines, "<p>"+p+"</p>")
		}
	}
	lines = append(lines, "")

	if len(blog.Sections) > 2 {
		lines = append(lines, `<div class="toc">`, "<h2>目次</h2>", "<ul>")
		for _, section := range blog.Sections {
			anchor := Anchor(section.Title)
			lines = append(lines, fmt.Sprintf(`  <li><a href="#%s">%s</a></li>`, anchor, section.Title))
		}
		lines = append(lines, "</ul>", "</div>", "")
	}

	for _, section := range blog.Sections {
		lines = append(lines, fmt.Sprintf(`<h2 id="%s">%s</h2>`, Anchor(section.Title), section.Title))
		lines = append(lines, renderParagraphs(section.Content)...)
		lines = append(lines, "")
	}

	lines = append(lines, renderConclusion(blog.Conclusion)...)
	lines = append(lines, w.renderFooter(blog)...)

	return strings.Join(lines, "\n")
}

// renderParagraphs converts a section's text into paragraph, ordered-list,
// and unordered-list HTML blocks.
func renderParagraphs(content string) []string {
	var lines []string
	for _, part := range strings.Split(content, "\n\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch {
		case orderedPrefix.MatchString(part):
			lines = append(lines, "<ol>")
			for _, line := range strings.Split(part, "\n") {
				line = strings.TrimSpace(line)
				if !orderedPrefix.MatchString(line) {
					continue
				}
				_, item, _ := strings.Cut(line, ". ")
				lines = append(lines, "  <li>"+InlineFormat(item)+"</li>")
			}
			lines = append(lines, "</ol>")
		case strings.HasPrefix(part, "- "):
			lines = append(lines, "<ul>")
			for _, line := range strings.Split(part, "\n") {
				line = strings.TrimSpace(line)
				if !strings.HasPrefix(line, "- ") {
					continue
				}
				lines = append(lines, "  <li>"+InlineFormat(line[2:])+"</li>")
			}
			lines = append(lines, "</ul>")
		default:
			lines = append(lines, "<p>"+InlineFormat(part)+"</p>")
		}
	}
	return lines
}

func renderConclusion(conclusion string) []string {
	var lines []string
	for _, part := range strings.Split(conclusion, "\n\n") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case strings.HasPrefix(part, "## "):
			lines = append(lines, "<h2>"+part[3:]+"</h2>")
		case orderedPrefix.MatchString(part):
			lines = append(lines, "<ol>")
			for _, line := range strings.Split(part, "\n") {
				if line = strings.TrimSpace(line); line == "" {
					continue
				}
				_, item, found := strings.Cut(line, ". ")
				if !found {
					item = line
				}
				lines = append(lines, "  <li>"+item+"</li>")
			}
			lines = append(lines, "</ol>")
		default:
			lines = append(lines, "<p>"+part+"</p>")
		}
	}
	return lines
}

func (w *Writer) renderFooter(blog *model.BlogContent) []string {
	lines := []string{
		`<hr class="section-divider">`,
		`<div class="article-footer">`,
		"<h3>この記事について</h3>",
		`<dl class="article-meta">`,
	}

	if blog.TargetAudience != nil {
		label, ok := audienceLabels[blog.TargetAudience.Primary]
		if !ok {
			label = string(blog.TargetAudience.Primary)
		}
		lines = append(lines, "  <dt>対象読者</dt>", "  <dd>"+label+"</dd>")
	}

	lines = append(lines,
		"  <dt>読了時間</dt>",
		fmt.Sprintf("  <dd>約%d分</dd>", blog.ReadingTime),
		"  <dt>更新日</dt>",
		fmt.Sprintf("  <dd>%s</dd>", w.now().Format("2006年01月02日")),
		"</dl>",
	)

	if len(blog.MainPoints) > 0 {
		points := blog.MainPoints
		if len(points) > 3 {
			points = points[:3]
		}
		lines = append(lines, `<div class="key-points">`, "<h3>この記事の要点</h3>", "<ul>")
		for _, point := range points {
			lines = append(lines, "  <li>"+point.Text+"</li>")
		}
		lines = append(lines, "</ul>", "</div>")
	}

	return append(lines, "</div>")
}

// Anchor converts a heading into a URL-safe anchor ID. Headings that
// reduce to nothing (pure Japanese text) hash instead, so anchors are
// never empty.
func Anchor(title string) string {
	anchor := strings.ToLower(title)
	anchor = nonAnchorChar.ReplaceAllString(anchor, "")
	anchor = anchorSpaces.ReplaceAllString(anchor, "-")

	if anchor == "" || anchor == "-" {
		sum := md5.Sum([]byte(title))
		return fmt.Sprintf("section-%x", sum[:4])
	}
	return anchor
}

// InlineFormat converts the minimal markdown-like conventions to HTML:
// **bold** to strong and *text* to em.
func InlineFormat(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = emPattern.ReplaceAllString(text, "<em>$1</em>")
	return text
}
