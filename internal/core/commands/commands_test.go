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

// Package commands_test runs the content-generation commands as a chain
// over an already-transcribed run state, the way the workflow composes
// them after the transcription stage. It verifies the state accumulation
// and every artifact landing on disk.
package commands_test

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/article"
	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/Shiki0138/video-content-system/internal/core/commands"
	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/core/render"
	"github.com/Shiki0138/video-content-system/internal/imagegen"
	"github.com/Shiki0138/video-content-system/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContentChain builds the post-transcription chain the workflow runs:
// article, render, description, social, thumbnail, images, metadata.
func newContentChain(cfg *config.Config) *cor.BaseChain {
	chain := cor.NewBaseChain("test-content-chain")
	chain.AddCommand(commands.NewArticleCommand("article", article.NewOptimizer()))
	chain.AddCommand(commands.NewRenderCommand("render", render.NewWriter(cfg.Blog)))
	chain.AddCommand(commands.NewYouTubeCommand("youtube-description", channels.NewDescriptionFormatter(cfg.YouTube)))
	chain.AddCommand(commands.NewSocialCommand("social-posts", channels.NewSocialFormatter(cfg.Social)))
	chain.AddCommand(commands.NewThumbnailCommand("thumbnail-text"))
	chain.AddCommand(commands.NewImageCommand("images",
		channels.NewPromptGenerator(rand.New(rand.NewSource(1))),
		imagegen.NewClient(cfg.ImageAPI)))
	chain.AddCommand(commands.NewMetadataCommand("metadata"))
	return chain
}

// TestContentChain runs the whole post-transcription chain over the
// sample transcript and checks the accumulated state and output files.
func TestContentChain(t *testing.T) {
	cfg := config.NewConfig()
	dir := t.TempDir()

	state := &commands.RunState{
		RunID:      "test-run",
		VideoPath:  "sample.mp4",
		Title:      "動画コンテンツ自動化",
		OutputDir:  dir,
		Transcript: testutil.GetSampleTranscript(),
	}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, state)

	newContentChain(cfg).Execute(chainCtx)
	require.False(t, chainCtx.HasErrors(), "chain errors: %v", chainCtx.GetErrors())

	// State accumulation.
	require.NotNil(t, state.Blog)
	assert.Equal(t, 5, len(state.Blog.Sections))
	require.NotNil(t, state.Social)
	assert.Equal(t, 5, len(state.Social.Variations))
	require.NotNil(t, state.Thumbnail)
	require.NotNil(t, state.Metadata)
	assert.Equal(t, "test-run", state.Metadata.RunID)
	assert.Equal(t, 5, state.Metadata.Stats.SectionCount)
	assert.Equal(t, 80.0, state.Metadata.Stats.Duration)

	// Image generation is disabled by default and must not fail the run.
	assert.Equal(t, 0, len(state.Images))

	// Artifacts on disk.
	assert.FileExists(t, state.Outputs.Article)
	assert.FileExists(t, filepath.Join(dir, commands.YouTubeDescriptionFile))
	assert.FileExists(t, filepath.Join(dir, commands.SocialPostsFile))
	assert.FileExists(t, filepath.Join(dir, commands.LegacySocialPostFile))
	assert.FileExists(t, filepath.Join(dir, commands.ThumbnailTextFile))
	assert.FileExists(t, filepath.Join(dir, commands.MetadataFile))

	// The final state is still the chain's output.
	assert.Equal(t, state, chainCtx.Get(cor.CtxIn))
}

// TestChainReportsMissingTranscript verifies the guard rails: running
// the content chain without a transcript records an error instead of
// panicking.
func TestChainReportsMissingTranscript(t *testing.T) {
	cfg := config.NewConfig()

	state := &commands.RunState{
		RunID:     "test-run",
		Title:     "タイトル",
		OutputDir: t.TempDir(),
	}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, state)

	newContentChain(cfg).Execute(chainCtx)
	assert.True(t, chainCtx.HasErrors())
}

// newImageStub runs a local inference endpoint that answers every task
// with an image URL served by the same stub.
func newImageStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/image.png", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/infer", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []struct {
				TaskUUID string `json:"taskUUID"`
			} `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Input) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{
				{"taskUUID": req.Input[0].TaskUUID, "imageURL": server.URL + "/image.png"},
			},
		})
	})
	return server
}

// TestImageCommandGeneratesAllPlacements runs the image stage against a
// stub API and checks every placement lands on disk: the three thumbnail
// strategies, the blog featured image, and the section images, all
// recorded in the run's output listing.
func TestImageCommandGeneratesAllPlacements(t *testing.T) {
	server := newImageStub(t)
	dir := t.TempDir()

	transcript := testutil.GetSampleTranscript()
	state := &commands.RunState{
		RunID:      "image-run",
		Title:      "画像生成テスト",
		OutputDir:  dir,
		Transcript: transcript,
		Blog:       article.NewOptimizer().Optimize(transcript, "画像生成テスト"),
	}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, state)

	cmd := commands.NewImageCommand("images",
		channels.NewPromptGenerator(rand.New(rand.NewSource(1))),
		imagegen.NewClient(config.ImageAPI{
			Endpoint:          server.URL + "/infer",
			APIKey:            "test-key",
			ModelID:           "test:model",
			TimeoutInSeconds:  5,
			RequestsPerMinute: 6000,
			Enabled:           true,
		}))
	cmd.Execute(chainCtx)
	require.False(t, chainCtx.HasErrors(), "stage errors: %v", chainCtx.GetErrors())

	// Three thumbnails, one featured image, three section images.
	require.Equal(t, 7, len(state.Images))
	assert.Equal(t, "featured", state.Images[3].Strategy)

	assert.FileExists(t, filepath.Join(dir, commands.ThumbnailImageDir, "youtube_thumbnail_impact_1.png"))
	assert.FileExists(t, filepath.Join(dir, "featured_image.png"))
	assert.FileExists(t, filepath.Join(dir, "section_image_1.png"))
	assert.Contains(t, state.Outputs.Images, filepath.Join(dir, "featured_image.png"))
}

// TestMetadataCommandAlone verifies the terminal stage handles a state
// with only partial results.
func TestMetadataCommandAlone(t *testing.T) {
	dir := t.TempDir()
	state := &commands.RunState{
		RunID:      "partial-run",
		Title:      "部分実行",
		OutputDir:  dir,
		Transcript: testutil.GetSampleTranscript(),
	}

	chainCtx := cor.NewBaseContext()
	chainCtx.SetContext(context.Background())
	chainCtx.Add(cor.CtxIn, state)

	cmd := commands.NewMetadataCommand("metadata")
	cmd.Execute(chainCtx)

	require.False(t, chainCtx.HasErrors())
	require.NotNil(t, state.Metadata)
	assert.Equal(t, 0, state.Metadata.Stats.SectionCount)

	raw, err := os.ReadFile(filepath.Join(dir, commands.MetadataFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "partial-run")
}
