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

// Package testutil provides utility functions and sample data to support
// the application's test suite: a cached test configuration and transcript
// fixtures shared across packages.
package testutil

import (
	"log"
	"os"
	"testing"

	"github.com/Shiki0138/video-content-system/internal/config"
	"github.com/Shiki0138/video-content-system/internal/core/model"
)

// StateManager acts as a simple in-memory cache for the application
// configuration during test runs, so the TOML files are read at most once
// per test binary.
type StateManager struct {
	config *config.Config
}

var state = &StateManager{}

// HandleErr fails the test when err is non-nil. A convenience to reduce
// boilerplate error checking in tests.
func HandleErr(err error, t *testing.T) {
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// SetupOS points the configuration loader at the test config files.
func SetupOS() (err error) {
	err = os.Setenv(config.EnvConfigFilePrefix, "configs")
	if err != nil {
		return err
	}
	err = os.Setenv(config.EnvConfigRuntime, "test")
	return err
}

// GetConfig is a singleton accessor for the test configuration. Missing
// config files fall back to the built-in defaults, so tests run the same
// from any working directory.
func GetConfig() *config.Config {
	if state.config == nil {
		if err := SetupOS(); err != nil {
			log.Fatalf("failed to setup environment for test: %v\n", err)
		}
		cfg := config.NewConfig()
		if err := config.Load(cfg); err != nil {
			log.Fatalf("failed to load test config: %v\n", err)
		}
		state.config = cfg
	}
	return state.config
}

// GetSampleTranscriptText returns a short colloquial transcript in the
// register the pipeline is tuned for: spoken Japanese with fillers,
// casual endings, and a problem/solution arc.
func GetSampleTranscriptText() string {
	return "えっと、今日はですね、動画からブログ記事を自動生成するシステムについて話します。" +
		"これまで動画を作った後、ブログ記事を書くのが大変だったんですけど、" +
		"このシステムを使えば全部自動でできちゃうんですよ。" +
		"編集とかサムネール作成に数時間かかってたんですね。" +
		"ということで、まあ、仕組みを説明していきます。" +
		"それで、音声を文字起こしして、AIがその内容を分析して記事にしてくれます。" +
		"クロードを使った自動システムなので、品質もかなり高いと思います。" +
		"これで時間を節約できるようになりました。"
}

// GetSampleTranscript returns a structured transcript fixture with
// timed segments spanning a bit over a minute, enough to derive chapters.
func GetSampleTranscript() *model.Transcript {
	segments := []*model.Segment{
		{ID: 0, Start: 0.0, End: 12.5, Text: "えっと、今日はですね、動画からブログ記事を自動生成するシステムについて話します。", Duration: 12.5},
		{ID: 1, Start: 12.5, End: 31.0, Text: "これまで動画を作った後、ブログ記事を書くのが大変だったんですけど、このシステムを使えば全部自動でできちゃうんですよ。", Duration: 18.5},
		{ID: 2, Start: 31.0, End: 48.0, Text: "編集とかサムネール作成に数時間かかってたんですね。", Duration: 17.0},
		{ID: 3, Start: 48.0, End: 66.0, Text: "それで、音声を文字起こしして、AIがその内容を分析して記事にしてくれます。", Duration: 18.0},
		{ID: 4, Start: 66.0, End: 80.0, Text: "クロードを使った自動システムなので、品質もかなり高いと思います。", Duration: 14.0},
	}

	return &model.Transcript{
		Text:     GetSampleTranscriptText(),
		Segments: segments,
		Chapters: []*model.Chapter{
			{Time: "0:31", Timestamp: 31.0, Title: "編集とかサムネール作成に数時間かかってたんですね。"},
			{Time: "1:06", Timestamp: 66.0, Title: "クロードを使った自動システムなので、品質もかなり高いと思います。"},
		},
		Language: "ja",
		Duration: 80.0,
	}
}
