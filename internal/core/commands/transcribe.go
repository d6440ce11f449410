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

package commands

import (
	"path/filepath"

	"github.com/Shiki0138/video-content-system/internal/core/cor"
	"github.com/Shiki0138/video-content-system/internal/transcribe"
)

// TranscribeCommand runs Whisper over the run's video and attaches the
// structured transcript to the pipeline state. It also probes the video
// container so later stages can report duration and size. Transcription
// failure is fatal for the run; a failed probe degrades to zero values.
type TranscribeCommand struct {
	cor.BaseCommand
	transcriber *transcribe.Transcriber
}

// NewTranscribeCommand is the constructor for TranscribeCommand.
//
// Inputs:
//   - name: A string name for this command instance, used for logging
//     and telemetry.
//   - transcriber: The configured Whisper runner.
//
// Outputs:
//   - *TranscribeCommand: A pointer to the newly instantiated command.
func NewTranscribeCommand(name string, transcriber *transcribe.Transcriber) *TranscribeCommand {
	return &TranscribeCommand{
		BaseCommand: *cor.NewBaseCommand(name),
		transcriber: transcriber,
	}
}

// Execute runs the transcription stage.
//
// Inputs:
//   - context: The shared cor.Context for this workflow execution.
func (c *TranscribeCommand) Execute(context cor.Context) {
	state, err := stateFrom(context.Get(c.GetInputParam()))
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	transcript, err := c.transcriber.Transcribe(context.GetContext(), state.VideoPath, state.OutputDir)
	if err != nil {
		c.GetErrorCounter().Add(context.GetContext(), 1)
		context.AddError(c.GetName(), err)
		return
	}

	state.Transcript = transcript
	state.VideoInfo = transcribe.ProbeVideo(context.GetContext(), state.VideoPath)
	state.Outputs.Transcript = filepath.Join(state.OutputDir, transcribe.TranscriptJSONFile)

	c.GetSuccessCounter().Add(context.GetContext(), 1)
	context.Add(c.GetOutputParam(), state)
}
