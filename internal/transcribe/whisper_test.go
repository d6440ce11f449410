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

package transcribe_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zeebo/assert"

	"github.com/Shiki0138/video-content-system/internal/transcribe"
)

// mp4Header is a minimal MP4 container signature: box size, the "ftyp"
// marker and the "isom" brand, padded out so the sniffer has bytes to
// read past the magic.
var mp4Header = append([]byte{
	0x00, 0x00, 0x00, 0x14,
	'f', 't', 'y', 'p',
	'i', 's', 'o', 'm',
}, make([]byte, 8)...)

// TestValidateVideoFile verifies that a file carrying a video container
// signature passes validation.
func TestValidateVideoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	assert.NoError(t, os.WriteFile(path, mp4Header, 0o644))

	assert.NoError(t, transcribe.ValidateVideoFile(path))
}

// TestValidateVideoFileRejectsNonVideo verifies that the extension alone
// is not trusted: a text file named like a video is rejected.
func TestValidateVideoFileRejectsNonVideo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.mp4")
	assert.NoError(t, os.WriteFile(path, []byte("just some notes"), 0o644))

	assert.Error(t, transcribe.ValidateVideoFile(path))
}

// TestValidateVideoFileMissing verifies the error for a path that does
// not exist.
func TestValidateVideoFileMissing(t *testing.T) {
	assert.Error(t, transcribe.ValidateVideoFile(filepath.Join(t.TempDir(), "gone.mp4")))
}

// TestProbeVideoDegrades verifies that a failed probe returns the zero
// values instead of an error, since container metadata is decorative.
func TestProbeVideoDegrades(t *testing.T) {
	info := transcribe.ProbeVideo(context.Background(), filepath.Join(t.TempDir(), "gone.mp4"))

	assert.Equal(t, "unknown", info.Format)
	assert.Equal(t, "0:00", info.DurationStr)
	assert.Equal(t, 0.0, info.Duration)
}
