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

package channels

import (
	"github.com/Shiki0138/video-content-system/internal/core/model"
	"github.com/Shiki0138/video-content-system/internal/core/nlp"
)

// thumbnailTitleMax is the character cap for the thumbnail overlay title.
const thumbnailTitleMax = 15

// BuildThumbnailText derives the thumbnail overlay text: the title capped
// at fifteen characters with an ellipsis, and a subtitle from the top
// keyword or a static fallback when the transcript yields none.
func BuildThumbnailText(title, text string) *model.ThumbnailText {
	main := title
	if runes := []rune(main); len(runes) > thumbnailTitleMax {
		main = string(runes[:thumbnailTitleMax]) + "..."
	}

	keywords := nlp.ExtractKeywords(text, 3)
	subtitle := "詳細は動画で！"
	if len(keywords) > 0 {
		subtitle = keywords[0] + "について解説"
	}

	return &model.ThumbnailText{
		Title:    main,
		Subtitle: subtitle,
		Keywords: keywords,
	}
}
