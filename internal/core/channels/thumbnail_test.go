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

package channels_test

import (
	"testing"

	"github.com/Shiki0138/video-content-system/internal/core/channels"
	"github.com/stretchr/testify/assert"
)

// TestBuildThumbnailText verifies the overlay title cap and the
// keyword-derived subtitle.
func TestBuildThumbnailText(t *testing.T) {
	text := "動画 動画 編集 編集 編集"

	short := channels.BuildThumbnailText("編集の基本", text)
	assert.Equal(t, "編集の基本", short.Title)
	assert.Equal(t, "編集について解説", short.Subtitle)
	assert.Equal(t, []string{"編集", "動画"}, short.Keywords)

	long := channels.BuildThumbnailText("とても長いサムネイル用のタイトルです", text)
	assert.Equal(t, "とても長いサムネイル用のタイト...", long.Title)
}

// TestBuildThumbnailTextFallback verifies the static subtitle when the
// transcript yields no keywords.
func TestBuildThumbnailTextFallback(t *testing.T) {
	got := channels.BuildThumbnailText("短い", "")
	assert.Equal(t, "詳細は動画で！", got.Subtitle)
	assert.Equal(t, 0, len(got.Keywords))
}
