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

// Package config defines the data structures for application configuration,
// loaded from TOML files. It provides a structured way to manage settings
// for every stage of the content pipeline: transcription, article generation,
// channel formatting, thumbnail image generation, and the preview server.
//
// Analysis thresholds (tone ratios, segment minimums, and the like) are
// deliberately NOT configurable; they are constants owned by the packages
// that use them. Configuration covers paths, external tools, output limits,
// and API credentials only.
package config

// Whisper holds the settings for the external speech-to-text invocation.
type Whisper struct {
	BinaryPath       string `toml:"binary_path"`        // Path to the whisper executable.
	Model            string `toml:"model"`              // Model size: tiny/base/small/medium/large.
	Language         string `toml:"language"`           // Source language hint (e.g. "ja").
	TimeoutInSeconds int    `toml:"timeout_in_seconds"` // Hard cap on a single transcription run.
}

// Blog holds settings for the article generation stage.
type Blog struct {
	Layout     string   `toml:"layout"`     // Front matter layout name (e.g. "post").
	Author     string   `toml:"author"`     // Front matter author field.
	Categories []string `toml:"categories"` // Fixed category list for every generated article.
}

// YouTube holds settings for the video-platform description formatter.
type YouTube struct {
	AddChapters          bool     `toml:"add_chapters"`           // Whether to emit the chapter block.
	MaxDescriptionLength int      `toml:"max_description_length"` // Hard truncation limit for the description.
	DefaultTags          []string `toml:"default_tags"`           // Tags appended as #hashtags in the tag block.
}

// Social holds settings for the short social-post formatter.
type Social struct {
	MaxLength   int  `toml:"max_length"`   // Per-post character cap (140 for Japanese text).
	MaxHashtags int  `toml:"max_hashtags"` // Upper bound on appended hashtags.
	AddHashtags bool `toml:"add_hashtags"` // Whether hashtags are appended at all.
	ThreadMode  bool `toml:"thread_mode"`  // Whether to also emit the multi-part thread.
	IncludeLink bool `toml:"include_link"` // Whether to reserve space for a link placeholder.
}

// ImageAPI holds the settings for the external image-generation service.
type ImageAPI struct {
	Endpoint          string `toml:"endpoint"`            // Base URL of the image task API.
	APIKey            string `toml:"api_key"`             // Bearer token for the API.
	ModelID           string `toml:"model_id"`            // Diffusion model identifier sent per task.
	TimeoutInSeconds  int    `toml:"timeout_in_seconds"`  // HTTP client timeout per request.
	RequestsPerMinute int    `toml:"requests_per_minute"` // Rate limit applied by the client.
	Enabled           bool   `toml:"enabled"`             // Disables image generation entirely when false.
	ThumbnailCount    int    `toml:"thumbnail_count"`     // Number of thumbnail variations to request.
	SectionImageCount int    `toml:"section_image_count"` // Number of article section images to request.
}

// Preview holds the settings for the local preview server.
type Preview struct {
	Address string `toml:"address"` // Listen address, e.g. ":8080".
}

// Config represents the overall configuration for the application, loaded
// from TOML files. It acts as the root container for all other configuration
// structs and is constructed once at process start, then passed by reference
// into each component constructor. There is no ambient global lookup.
type Config struct {
	Application struct {
		Name          string `toml:"name"`            // The name of the application.
		OutputBaseDir string `toml:"output_base_dir"` // Root directory for per-run output directories.
	} `toml:"application"`
	Whisper  Whisper  `toml:"whisper"`
	Blog     Blog     `toml:"blog"`
	YouTube  YouTube  `toml:"youtube"`
	Social   Social   `toml:"social"`
	ImageAPI ImageAPI `toml:"image_api"`
	Preview  Preview  `toml:"preview"`
}

// NewConfig creates a Config populated with the documented defaults. Values
// present in the TOML files overwrite these; values absent keep them, so a
// minimal config file is always valid.
func NewConfig() *Config {
	c := &Config{}
	c.Application.Name = "video-content-system"
	c.Application.OutputBaseDir = "output"
	c.Whisper = Whisper{
		BinaryPath:       "whisper",
		Model:            "base",
		Language:         "ja",
		TimeoutInSeconds: 1800,
	}
	c.Blog = Blog{
		Layout:     "post",
		Author:     "Video Bot",
		Categories: []string{"video", "blog"},
	}
	c.YouTube = YouTube{
		AddChapters:          true,
		MaxDescriptionLength: 5000,
	}
	c.Social = Social{
		MaxLength:   140,
		MaxHashtags: 3,
		AddHashtags: true,
		ThreadMode:  true,
		IncludeLink: true,
	}
	c.ImageAPI = ImageAPI{
		TimeoutInSeconds:  120,
		RequestsPerMinute: 30,
		ThumbnailCount:    3,
		SectionImageCount: 3,
	}
	c.Preview = Preview{Address: ":8080"}
	return c
}
