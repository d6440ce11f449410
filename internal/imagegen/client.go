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

// Package imagegen generates thumbnail and article images through an
// external image-inference REST API.
//
// Logic Flow:
//  1. Each prompt becomes one inference request: a JSON task carrying a
//     UUID, the prompt text, target dimensions, and the model ID, sent
//     with Bearer authentication.
//  2. Requests pass through a shared rate limiter sized from the
//     configured requests-per-minute budget, so parallel generation never
//     exceeds the API's quota.
//  3. The response carries a hosted image URL; the client downloads it
//     and writes the PNG next to the run's other artifacts.
//  4. A failed image is logged and skipped. One bad generation never
//     fails the run, so the caller always gets whatever subset succeeded.
package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// Image dimensions per placement. Thumbnails target the video platform
// player, featured images target OGP cards, section images sit inline in
// the article body.
const (
	thumbnailWidth  = 1280
	thumbnailHeight = 720
	featuredWidth   = 1200
	featuredHeight  = 630
	sectionWidth    = 800
	sectionHeight   = 450

	inferenceSteps = 25
	cfgScale       = 7.0

	negativePrompt = "blurry, low quality, text, watermark, signature, distorted"
)

// inferenceTask is one generation request in the API's task envelope.
type inferenceTask struct {
	TaskType       string  `json:"taskType"`
	TaskUUID       string  `json:"taskUUID"`
	PromptText     string  `json:"promptText"`
	NegativePrompt string  `json:"negativePrompt,omitempty"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	Model          string  `json:"model"`
	NumberResults  int     `json:"numberResults"`
	OutputFormat   string  `json:"outputFormat"`
	Steps          int     `json:"steps"`
	CFGScale       float64 `json:"cfgScale"`
}

type inferenceRequest struct {
	Input []inferenceTask `json:"input"`
}

type inferenceResponse struct {
	Data []struct {
		TaskUUID string `json:"taskUUID"`
		ImageURL string `json:"imageURL"`
	} `json:"data"`
}

// Client talks to the image-inference API.
type Client struct {
	cfg     config.ImageAPI
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a Client from the API configuration. The HTTP timeout
// and request-rate budget both come from the config.
func NewClient(cfg config.ImageAPI) *Client {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 1
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutInSeconds) * time.Second},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
	}
}

// Enabled reports whether image generation is configured to run.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.APIKey != ""
}

// GenerateThumbnails renders every thumbnail strategy in parallel and
// returns the images that succeeded, in prompt order.
func (c *Client) GenerateThumbnails(ctx context.Context, prompts []*channels.ThumbnailPrompt, outputDir string) []model.GeneratedImage {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		slog.Error("failed to create image output dir", slog.Any("error", err))
		return nil
	}

	results := make([]*model.GeneratedImage, len(prompts))
	var wg sync.WaitGroup
	for i, prompt := range prompts {
		wg.Add(1)
		go func(i int, prompt *channels.ThumbnailPrompt) {
			defer wg.Done()
			path := filepath.Join(outputDir, fmt.Sprintf("youtube_thumbnail_%s_%d.png", prompt.Strategy, i+1))
			img, err := c.generateOne(ctx, prompt.Prompt, thumbnailWidth, thumbnailHeight, path)
			if err != nil {
				slog.Error("thumbnail generation failed",
					slog.String("strategy", prompt.Strategy),
					slog.Any("error", err))
				return
			}
			img.Strategy = prompt.Strategy
			results[i] = img
		}(i, prompt)
	}
	wg.Wait()

	var images []model.GeneratedImage
	for _, img := range results {
		if img != nil {
			images = append(images, *img)
		}
	}
	return images
}

// GenerateFeatured renders the article's featured image.
func (c *Client) GenerateFeatured(ctx context.Context, prompt *channels.ThumbnailPrompt, outputDir string) (*model.GeneratedImage, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image output dir: %w", err)
	}
	path := filepath.Join(outputDir, "featured_image.png")
	img, err := c.generateOne(ctx, prompt.Prompt, featuredWidth, featuredHeight, path)
	if err != nil {
		return nil, err
	}
	img.Strategy = prompt.Strategy
	return img, nil
}

// GenerateSectionImages renders inline images for the article sections,
// skipping any that fail.
func (c *Client) GenerateSectionImages(ctx context.Context, prompts []*channels.SectionPrompt, outputDir string) []model.GeneratedImage {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		slog.Error("failed to create image output dir", slog.Any("error", err))
		return nil
	}

	var images []model.GeneratedImage
	for i, prompt := range prompts {
		path := filepath.Join(outputDir, fmt.Sprintf("section_image_%d.png", i+1))
		img, err := c.generateOne(ctx, prompt.Prompt, sectionWidth, sectionHeight, path)
		if err != nil {
			slog.Error("section image generation failed",
				slog.String("section", prompt.Section),
				slog.Any("error", err))
			continue
		}
		img.Strategy = "section"
		images = append(images, *img)
	}
	return images
}

// generateOne sends a single inference task and downloads the result to
// destPath.
func (c *Client) generateOne(ctx context.Context, prompt string, width, height int, destPath string) (*model.GeneratedImage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter interrupted: %w", err)
	}

	taskID := uuid.New().String()
	payload := inferenceRequest{Input: []inferenceTask{{
		TaskType:       "imageInference",
		TaskUUID:       taskID,
		PromptText:     prompt,
		NegativePrompt: negativePrompt,
		Height:         height,
		Width:          width,
		Model:          c.cfg.ModelID,
		NumberResults:  1,
		OutputFormat:   "PNG",
		Steps:          inferenceSteps,
		CFGScale:       cfgScale,
	}}}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build inference request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", slog.Any("error", err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference request returned %s", resp.Status)
	}

	var result inferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(result.Data) == 0 || result.Data[0].ImageURL == "" {
		return nil, fmt.Errorf("inference response carried no image")
	}

	if err := c.download(ctx, result.Data[0].ImageURL, destPath); err != nil {
		return nil, err
	}

	return &model.GeneratedImage{
		TaskID: taskID,
		Path:   destPath,
		Prompt: prompt,
	}, nil
}

func (c *Client) download(ctx context.Context, url string, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("image download failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Warn("failed to close response body", slog.Any("error", err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image download returned %s", resp.Status)
	}

	file, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return file.Close()
}
