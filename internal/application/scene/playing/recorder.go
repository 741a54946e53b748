package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/interactor/internal/application/replay"
	"github.com/younwookim/interactor/internal/application/system"
)

// Recorder captures the inputs of a play session so it can be replayed
type Recorder struct {
	data    replay.ReplayData
	stopped bool
}

// NewRecorder starts recording play on level
func NewRecorder(level string) *Recorder {
	return &Recorder{data: replay.NewReplayData(level)}
}

// RecordFrame appends one frame of input. Frames are numbered in the order
// they arrive.
func (r *Recorder) RecordFrame(input system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.Record(len(r.data.Frames), input))
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// Stop stops recording; frames already captured are kept
func (r *Recorder) Stop() { r.stopped = true }

// IsRecording reports whether frames are still being captured
func (r *Recorder) IsRecording() bool { return !r.stopped }

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int { return len(r.data.Frames) }

// GetData returns the recording so far
func (r *Recorder) GetData() replay.ReplayData { return r.data }

// GenerateFilename names a recording of level after the current time
func GenerateFilename(level string) string {
	return fmt.Sprintf("replay_%s_%s.json", level, time.Now().Format("20060102_150405"))
}
